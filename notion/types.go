// Package notion maps normalized book records onto a Notion database and
// submits them through the pages API.
package notion

// Typed property value wrappers matching the pages API payload. A nil
// pointer inside Date/Number marshals to JSON null, which Notion reads as an
// explicit "no value" (distinct from zero).

type TextContent struct {
	Content string `json:"content"`
}

type RichText struct {
	Text TextContent `json:"text"`
}

type TitleProperty struct {
	Title []RichText `json:"title"`
}

type RichTextProperty struct {
	RichText []RichText `json:"rich_text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type SelectProperty struct {
	Select SelectOption `json:"select"`
}

type DateValue struct {
	Start string `json:"start"`
}

type DateProperty struct {
	Date *DateValue `json:"date"`
}

type NumberProperty struct {
	Number *float64 `json:"number"`
}

type CheckboxProperty struct {
	Checkbox bool `json:"checkbox"`
}

type URLProperty struct {
	URL string `json:"url"`
}

func Title(s string) TitleProperty {
	return TitleProperty{Title: richText(s)}
}

func Text(s string) RichTextProperty {
	return RichTextProperty{RichText: richText(s)}
}

func Select(name string) SelectProperty {
	return SelectProperty{Select: SelectOption{Name: name}}
}

func Date(start string) DateProperty {
	return DateProperty{Date: &DateValue{Start: start}}
}

func NullDate() DateProperty {
	return DateProperty{}
}

func Number(n float64) NumberProperty {
	return NumberProperty{Number: &n}
}

func NullNumber() NumberProperty {
	return NumberProperty{}
}

func Checkbox(b bool) CheckboxProperty {
	return CheckboxProperty{Checkbox: b}
}

func URL(u string) URLProperty {
	return URLProperty{URL: u}
}

func richText(s string) []RichText {
	return []RichText{{Text: TextContent{Content: s}}}
}
