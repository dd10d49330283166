// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BrandProfile holds the descriptive fields used to personalize generated
// content. Every field is optional free text; empty fields are omitted from
// the rendered prompt context. The JSON tags match the on-disk profile file,
// so files written by earlier versions of the tool load unchanged.
type BrandProfile struct {
	// CompanyName is the company or product name.
	CompanyName string `json:"company_name" yaml:"company_name"`

	// CompanyDescription describes what the company does and offers.
	CompanyDescription string `json:"company_description" yaml:"company_description"`

	// TargetAudience describes who the content is written for.
	TargetAudience string `json:"target_audience" yaml:"target_audience"`

	// ToneOfVoice sets the register of generated text (e.g. "friendly, expert").
	ToneOfVoice string `json:"tone_of_voice" yaml:"tone_of_voice"`

	// BrandValues lists what the brand stands for.
	BrandValues string `json:"brand_values" yaml:"brand_values"`

	// KeyMessages lists recurring points the content should reinforce.
	KeyMessages string `json:"key_messages" yaml:"key_messages"`
}

// IsEmpty reports whether no profile field is set.
func (p BrandProfile) IsEmpty() bool {
	return p == BrandProfile{}
}
