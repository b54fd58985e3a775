//go:build purego || (!amd64 && !arm64)

package mem

// This file imports only the scalar kernel set, for purego builds and for
// architectures without a vector tier.

import (
	_ "github.com/cwbudde/algo-mem/internal/arch/generic"
)
