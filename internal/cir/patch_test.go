package cir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palel-lang/palelc/internal/cir"
)

func TestMergePatch_DedupsByFileName(t *testing.T) {
	dst := cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}}
	src := cir.Patch{Includes: []cir.Include{{File: "stdint.h"}, {File: "stdio.h"}}}

	cir.MergePatch(&dst, src)

	assert.Equal(t, []cir.Include{{File: "stdint.h"}, {File: "stdio.h"}}, dst.Includes)
}

func TestMergePatch_PreservesInsertionOrder(t *testing.T) {
	dst := cir.Patch{}
	cir.MergePatch(&dst, cir.Patch{Includes: []cir.Include{{File: "stdio.h"}}})
	cir.MergePatch(&dst, cir.Patch{Includes: []cir.Include{{File: "stdint.h"}}})
	cir.MergePatch(&dst, cir.Patch{Includes: []cir.Include{{File: "stdio.h"}}})

	assert.Equal(t, []cir.Include{{File: "stdio.h"}, {File: "stdint.h"}}, dst.Includes)
}

func TestPatchSrc_NeverDuplicatesAcrossManyLowerings(t *testing.T) {
	unit := cir.TranslationUnit{}
	contributions := []cir.Patch{
		{Includes: []cir.Include{{File: "stdint.h"}}},
		{Includes: []cir.Include{{File: "stdio.h"}}},
		{Includes: []cir.Include{{File: "stdint.h"}}},
		{Includes: []cir.Include{{File: "float.h"}}},
		{Includes: []cir.Include{{File: "stdio.h"}}},
	}

	for _, p := range contributions {
		cir.PatchSrc(&unit, p)
	}

	assert.Len(t, unit.Includes, 3)
	seen := map[string]int{}
	for _, inc := range unit.Includes {
		seen[inc.File]++
	}
	for file, count := range seen {
		assert.Equalf(t, 1, count, "include %q appeared %d times", file, count)
	}
}

func TestMergePatch_EmptySrcIsNoop(t *testing.T) {
	dst := cir.Patch{Includes: []cir.Include{{File: "stdio.h"}}}
	cir.MergePatch(&dst, cir.Patch{})
	assert.Equal(t, []cir.Include{{File: "stdio.h"}}, dst.Includes)
}
