// Package allocate finds the next free numbered name for a new element.
package allocate

import (
	"fmt"

	"newelem/internal/log"
	"newelem/internal/macro"
	"newelem/pkg/types"
)

// NumberMacro is the macro name replaced by the sequence number.
const NumberMacro = "number"

// numberFormat pads the sequence number to four digits; larger numbers
// keep all their digits.
const numberFormat = "%04d"

// Lister returns a point-in-time snapshot of the entry names directly in
// a folder.
type Lister interface {
	ListSiblings(folder string) (map[string]struct{}, error)
}

// TempNameFunc maps a target name to its in-progress variant.
type TempNameFunc func(name string) string

// Allocator hands out the next unused numbered name for a naming pattern.
type Allocator struct {
	lister   Lister
	tempName TempNameFunc
}

// New creates an allocator over the given sibling lister and temporary
// name convention
func New(lister Lister, tempName TempNameFunc) *Allocator {
	return &Allocator{
		lister:   lister,
		tempName: tempName,
	}
}

// Allocate returns the first name produced by substituting 1, 2, 3, ...
// into the pattern's %(number) macro that is not taken in the pattern's
// folder, where a name counts as taken if either it or its temporary
// variant exists.
//
// The sibling listing is a single snapshot: no reservation is made, so
// concurrent callers against the same folder can be handed the same name.
// Callers that create resources concurrently must serialize around
// allocate-and-create. The search is unbounded; on a fully saturated
// namespace it does not terminate.
func (a *Allocator) Allocate(pattern string) (string, error) {
	folder := types.FolderPath(pattern)
	taken, err := a.lister.ListSiblings(folder)
	if err != nil {
		return "", err
	}

	for counter := 1; ; counter++ {
		number := fmt.Sprintf(numberFormat, counter)
		name := macro.New().Add(NumberMacro, number).Resolve(pattern)
		if a.isFree(taken, folder, name) {
			log.Debugf("allocated %s after %d probes", name, counter)
			return name, nil
		}
	}
}

// isFree checks the candidate and its temporary variant against the
// sibling snapshot. Names in the snapshot are bare entry names, so the
// folder prefix is stripped before the lookup.
func (a *Allocator) isFree(taken map[string]struct{}, folder, name string) bool {
	if _, ok := taken[name[len(folder):]]; ok {
		return false
	}
	temp := a.tempName(name)
	if _, ok := taken[temp[len(types.FolderPath(temp)):]]; ok {
		return false
	}
	return true
}
