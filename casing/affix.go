package casing

// camelOrEmpty camelizes text, treating token-free input as the empty
// string so affix helpers stay total.
func camelOrEmpty(text string) string {
	camel, err := ToCamel(text)
	if err != nil {
		return ""
	}
	return camel
}

// AddSuffix camelizes text and suffix and joins them with separator.
// Example: AddSuffix("name", "Suffix", "_") -> "name_suffix"
// Example: AddSuffix("name_", "_suffix", "_") -> "name_suffix"
func AddSuffix(text, suffix, separator string) string {
	return camelOrEmpty(text) + separator + camelOrEmpty(suffix)
}

// AddPrefix camelizes text and prefix and joins them with separator.
// Example: AddPrefix("name", "Prefix", "_") -> "prefix_name"
// Example: AddPrefix("name", "123", "_") -> "123_name"
func AddPrefix(text, prefix, separator string) string {
	return camelOrEmpty(prefix) + separator + camelOrEmpty(text)
}

// AppendText appends extra to text in PascalCase, leaving text itself
// untouched. Empty extra appends nothing.
// Example: AppendText("name", "suffix") -> "nameSuffix"
// Example: AppendText("name", "suffix_prefix") -> "nameSuffixPrefix"
func AppendText(text, extra string) string {
	if extra == "" {
		return text
	}
	pascal, err := ToPascal(extra)
	if err != nil {
		return text
	}
	return text + pascal
}
