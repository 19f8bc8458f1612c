//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"errors"
)

// the error kinds; wrap with fmt.Errorf("...: %w", ...) and test with errors.Is()

var (
	// ErrFitFailure - one model fit did not converge or was handed an unusable K; isolated to that fit
	ErrFitFailure = errors.New("model fit failure")

	// ErrNotFound - strict lookup of a K that is not in the candidate set
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument - a caller-supplied value outside the closed set of legal ones
	ErrInvalidArgument = errors.New("invalid argument")
)
