// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package uncorr

import (
	"errors"
	"fmt"

	"github.com/go-air/uncorr/param"
)

var (
	// ErrClassification is wrapped by every *ClassificationError.
	ErrClassification = errors.New("classification problem")

	// ErrInvalidCase is returned for cases which cannot be run.
	ErrInvalidCase = errors.New("invalid case")
)

// ClassificationError reports a function which none of the checks of its
// case could classify.
type ClassificationError struct {
	Case   string
	Vector *param.Vector
	// Variant is the function which failed its check when it is not Vector
	// itself: a projection variant of a good function, or the low part
	// added to a high function.
	Variant *param.Vector
	Reason  string
}

func (e *ClassificationError) Error() string {
	if e.Variant != nil {
		return fmt.Sprintf("%s: case %s: %s %s (variant %s)", ErrClassification, e.Case, e.Reason, e.Vector, e.Variant)
	}
	return fmt.Sprintf("%s: case %s: %s %s", ErrClassification, e.Case, e.Reason, e.Vector)
}

func (e *ClassificationError) Unwrap() error {
	return ErrClassification
}
