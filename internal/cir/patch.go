package cir

// MergePatch appends each include of src into dst, skipping any file
// name already present. Order is preserved; duplicates by file name
// are dropped.
func MergePatch(dst *Patch, src Patch) {
	for _, inc := range src.Includes {
		appendInclude(&dst.Includes, inc)
	}
}

// PatchSrc applies the same set-union discipline against a translation
// unit's include list.
func PatchSrc(dst *TranslationUnit, src Patch) {
	for _, inc := range src.Includes {
		appendInclude(&dst.Includes, inc)
	}
}

func appendInclude(includes *[]Include, inc Include) {
	for _, existing := range *includes {
		if existing.File == inc.File {
			return
		}
	}
	*includes = append(*includes, inc)
}
