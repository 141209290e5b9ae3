package allocate_test

import (
	"fmt"
	"testing"

	"newelem/internal/allocate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister serves a fixed sibling snapshot for one folder
type fakeLister struct {
	folder string
	names  map[string]struct{}
	err    error
	calls  int
}

func newFakeLister(folder string, names ...string) *fakeLister {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &fakeLister{folder: folder, names: set}
}

func (l *fakeLister) ListSiblings(folder string) (map[string]struct{}, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	if folder != l.folder {
		return nil, fmt.Errorf("unexpected folder %q", folder)
	}
	return l.names, nil
}

func tempName(name string) string {
	idx := len(name)
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			idx = i + 1
			break
		}
		if i == 0 {
			idx = 0
		}
	}
	return name[:idx] + "~" + name[idx:]
}

func TestAllocateFirstFree(t *testing.T) {
	lister := newFakeLister("/site/", "page_0001.html", "page_0002.html")
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("/site/page_%(number).html")
	require.NoError(t, err)
	assert.Equal(t, "/site/page_0003.html", name)
	assert.Equal(t, 1, lister.calls, "the sibling listing is a single snapshot")
}

func TestAllocateEmptyFolder(t *testing.T) {
	lister := newFakeLister("/site/")
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("/site/page_%(number).html")
	require.NoError(t, err)
	assert.Equal(t, "/site/page_0001.html", name)
}

func TestAllocateSkipsTemporaryNames(t *testing.T) {
	// 0002 is only taken as an in-progress temp file; it must still be
	// skipped.
	lister := newFakeLister("/site/", "page_0001.html", "~page_0002.html")
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("/site/page_%(number).html")
	require.NoError(t, err)
	assert.Equal(t, "/site/page_0003.html", name)
}

func TestAllocateZeroPadding(t *testing.T) {
	lister := newFakeLister("/site/")
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("/site/p%(number)")
	require.NoError(t, err)
	assert.Equal(t, "/site/p0001", name)
}

func TestAllocatePaddingOverflow(t *testing.T) {
	// Fill 1..10000 so the counter overflows the 4-digit padding
	names := make([]string, 0, 10000)
	for i := 1; i <= 9999; i++ {
		names = append(names, fmt.Sprintf("p%04d", i))
	}
	names = append(names, "p10000")
	lister := newFakeLister("/site/", names...)
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("/site/p%(number)")
	require.NoError(t, err)
	assert.Equal(t, "/site/p10001", name)
}

func TestAllocateListingErrorPropagates(t *testing.T) {
	lister := newFakeLister("/site/")
	lister.err = fmt.Errorf("listing failed")
	allocator := allocate.New(lister, tempName)

	_, err := allocator.Allocate("/site/page_%(number).html")
	require.Error(t, err)
	assert.Equal(t, lister.err, err, "listing failures pass through unchanged")
}

func TestAllocatePatternWithoutFolder(t *testing.T) {
	lister := newFakeLister("", "page_0001.html")
	allocator := allocate.New(lister, tempName)

	name, err := allocator.Allocate("page_%(number).html")
	require.NoError(t, err)
	assert.Equal(t, "page_0002.html", name)
}
