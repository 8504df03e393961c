// Package documents assembles case aggregates into structured, render-ready
// document models. Binary rendering happens elsewhere.
package documents

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownKind = errors.New("unknown document kind")

type Kind string

const (
	KindBillOfSale           Kind = "bill_of_sale"
	KindQuoteSummaryBasic    Kind = "quote_summary_basic"
	KindQuoteSummaryAnalytic Kind = "quote_summary_analytic"
	KindCaseSummary          Kind = "case_summary"
	KindCompletePackage      Kind = "complete_package"
)

var kindTitles = map[Kind]string{
	KindBillOfSale:           "Vehicle Bill of Sale",
	KindQuoteSummaryBasic:    "Quote Summary",
	KindQuoteSummaryAnalytic: "Vehicle Quote Analysis",
	KindCaseSummary:          "Case Summary",
	KindCompletePackage:      "Vehicle Acquisition Package",
}

// ParseKind validates a kind received from the outside.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindTitles[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) Title() string { return kindTitles[k] }

type BlockType string

const (
	BlockKeyValue  BlockType = "key_value"
	BlockParagraph BlockType = "paragraph"
	BlockCheckbox  BlockType = "checkbox"
)

type CheckboxOption struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
	// Detail is printed next to the box, e.g. the raw value behind "Other".
	Detail string `json:"detail,omitempty"`
}

// Block is a typed content block. Only the fields of its Type are set.
type Block struct {
	Type    BlockType        `json:"type"`
	Label   string           `json:"label,omitempty"`
	Value   string           `json:"value,omitempty"`
	Text    string           `json:"text,omitempty"`
	Options []CheckboxOption `json:"options,omitempty"`
}

func KeyValue(label, value string) Block {
	return Block{Type: BlockKeyValue, Label: label, Value: value}
}

func Paragraph(text string) Block {
	return Block{Type: BlockParagraph, Text: text}
}

func Checkboxes(label string, options ...CheckboxOption) Block {
	return Block{Type: BlockCheckbox, Label: label, Options: options}
}

type Section struct {
	Title string `json:"title"`
	// NewPage starts the section on a fresh output page.
	NewPage bool    `json:"newPage,omitempty"`
	Blocks  []Block `json:"blocks"`
}

// Document is the pre-rendering representation of a generated document.
// Section order is part of its contract.
type Document struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	CaseID      string    `json:"caseId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sections    []Section `json:"sections"`
}

// SectionTitles lists the section titles in order.
func (d Document) SectionTitles() []string {
	out := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Title
	}
	return out
}

// Section returns the first section with the given title.
func (d Document) Section(title string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Value returns the value of the first key/value block with the given label.
func (s Section) Value(label string) (string, bool) {
	for _, b := range s.Blocks {
		if b.Type == BlockKeyValue && b.Label == label {
			return b.Value, true
		}
	}
	return "", false
}
