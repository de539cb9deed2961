/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package resolver

import (
	"fmt"

	"github.com/botobag/staffgraph/store"
)

// ResolutionErrorKind classifies a ResolutionError.
type ResolutionErrorKind int

// Enumeration of ResolutionErrorKind
const (
	// The skill being resolved doesn't exist.
	MissingSkill ResolutionErrorKind = iota

	// The employee being resolved doesn't exist.
	MissingEmployee

	// The project being resolved doesn't exist.
	MissingProject

	// The entity being resolved exists but one of the entities it refers to cannot be resolved.
	BrokenReference
)

// String implements fmt.Stringer.
func (kind ResolutionErrorKind) String() string {
	switch kind {
	case MissingSkill:
		return "MissingSkill"
	case MissingEmployee:
		return "MissingEmployee"
	case MissingProject:
		return "MissingProject"
	case BrokenReference:
		return "BrokenReference"
	}
	return fmt.Sprintf("ResolutionErrorKind(%d)", int(kind))
}

// Owner identifies the entity that holds a reference.
type Owner struct {
	Collection store.Collection
	Pos        int
}

// String implements fmt.Stringer.
func (owner Owner) String() string {
	return fmt.Sprintf("%s %d", owner.Collection, owner.Pos)
}

// ResolutionError describes an entity that cannot be resolved.
type ResolutionError struct {
	Kind ResolutionErrorKind

	// Collection and Pos locate the entity that could not be resolved. For BrokenReference, they
	// locate the referenced entity.
	Collection store.Collection
	Pos        int

	// Owner is the entity holding the broken reference; only set for BrokenReference.
	Owner *Owner

	// Err is the underlying error: a *store.NotFoundError for the Missing kinds and the
	// *ResolutionError of the referenced entity for BrokenReference.
	Err error
}

// Error implements Go's error interface.
func (err *ResolutionError) Error() string {
	if err.Kind == BrokenReference {
		return fmt.Sprintf("%s refers to %s %d which cannot be resolved: %s",
			err.Owner, err.Collection, err.Pos, err.Err)
	}
	return fmt.Sprintf("%s: cannot resolve %s %d: %s", err.Kind, err.Collection, err.Pos, err.Err)
}

// Unwrap returns the underlying error.
func (err *ResolutionError) Unwrap() error {
	return err.Err
}

func brokenReference(owner Owner, target store.Collection, pos int, err error) *ResolutionError {
	return &ResolutionError{
		Kind:       BrokenReference,
		Collection: target,
		Pos:        pos,
		Owner:      &owner,
		Err:        err,
	}
}

// InvariantViolation is the value of panics raised by the Must functions. It signals that the store
// contains a reference which doesn't resolve, which can only happen when the store was populated
// without going through store.Builder. It is a programming error and should never be recovered to
// continue serving partial data.
type InvariantViolation struct {
	Err *ResolutionError
}

func newInvariantViolation(err error) *InvariantViolation {
	resolutionErr, ok := err.(*ResolutionError)
	if !ok {
		resolutionErr = &ResolutionError{Kind: BrokenReference, Err: err}
	}
	return &InvariantViolation{resolutionErr}
}

// Error implements Go's error interface.
func (v *InvariantViolation) Error() string {
	return "staffgraph: internal invariant violated: " + v.Err.Error()
}

// Unwrap returns the ResolutionError that caused the violation.
func (v *InvariantViolation) Unwrap() error {
	return v.Err
}
