package entities

import "time"

// Section keys accepted in SubServiceContent.SectionOrder.
const (
	SectionHero         = "hero"
	SectionWhy          = "why"
	SectionOwnership    = "ownership"
	SectionEntityTable  = "entityTable"
	SectionEntityTypes  = "entityTypes"
	SectionEntityChoose = "entityChoose"
	SectionDocuments    = "documents"
	SectionLocations    = "locations"
	SectionIntro        = "intro"
	SectionFAQ          = "faq"
)

// DefaultSectionOrder is used when a content document is saved without an
// explicit order.
var DefaultSectionOrder = []string{
	SectionHero,
	SectionWhy,
	SectionOwnership,
	SectionEntityTable,
	SectionEntityTypes,
	SectionEntityChoose,
	SectionDocuments,
	SectionLocations,
	SectionIntro,
	SectionFAQ,
}

func IsKnownSection(key string) bool {
	for _, s := range DefaultSectionOrder {
		if s == key {
			return true
		}
	}
	return false
}

type WhySlide struct {
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Image       string `json:"image" dynamodbav:"image"`
}

type OwnershipSlide struct {
	Title     string `json:"title" dynamodbav:"title"`
	LeftText  string `json:"leftText,omitempty" dynamodbav:"left_text,omitempty"`
	RightText string `json:"rightText,omitempty" dynamodbav:"right_text,omitempty"`
	Image     string `json:"image" dynamodbav:"image"`
}

type EntityRow struct {
	ID             string `json:"id,omitempty" dynamodbav:"id,omitempty"`
	EntityType     string `json:"entityType" dynamodbav:"entity_type"`
	Ownership      string `json:"ownership" dynamodbav:"ownership"`
	BestFor        string `json:"bestFor" dynamodbav:"best_for"`
	Capital        string `json:"capital" dynamodbav:"capital"`
	RegulatoryBody string `json:"regulatoryBody" dynamodbav:"regulatory_body"`
	TimeToSetup    string `json:"timeToSetup" dynamodbav:"time_to_setup"`
	Icon           string `json:"icon,omitempty" dynamodbav:"icon,omitempty"`
}

type EntityTypeSlide struct {
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	MainImage   string `json:"mainImage" dynamodbav:"main_image"`
	SubImage    string `json:"subImage" dynamodbav:"sub_image"`
}

type ChooseOption struct {
	Label string `json:"label" dynamodbav:"label"`
	Value string `json:"value" dynamodbav:"value"`
}

type EntityChooseQuestion struct {
	Question      string         `json:"question" dynamodbav:"question"`
	Options       []ChooseOption `json:"options" dynamodbav:"options"`
	SelectedValue string         `json:"selectedValue,omitempty" dynamodbav:"selected_value,omitempty"`
}

type DocumentCard struct {
	Title string   `json:"title" dynamodbav:"title"`
	Items []string `json:"items" dynamodbav:"items"`
	Icon  string   `json:"icon,omitempty" dynamodbav:"icon,omitempty"`
}

type DocumentGroup struct {
	EntityValue string         `json:"entityValue" dynamodbav:"entity_value"`
	Cards       []DocumentCard `json:"cards" dynamodbav:"cards"`
}

type LocationSlide struct {
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Image       string `json:"image" dynamodbav:"image"`
	Tag         string `json:"tag,omitempty" dynamodbav:"tag,omitempty"`
	Link        string `json:"link,omitempty" dynamodbav:"link,omitempty"`
}

type ContentSection struct {
	Heading string `json:"heading" dynamodbav:"heading"`
	Text    string `json:"text" dynamodbav:"text"`
	Image   string `json:"image,omitempty" dynamodbav:"image,omitempty"`
}

type FAQ struct {
	Q string `json:"q" dynamodbav:"q"`
	A string `json:"a" dynamodbav:"a"`
}

// SubServiceContent is the page document edited in the admin content editor.
// There is at most one per subservice.
//
// Storage model (DynamoDB):
//   - PK: subservice_id
type SubServiceContent struct {
	SubServiceID string   `json:"subServiceId" dynamodbav:"subservice_id"`
	SectionOrder []string `json:"sectionOrder" dynamodbav:"section_order"`

	HeroTitle       string `json:"heroTitle" dynamodbav:"hero_title"`
	HeroSubtitle    string `json:"heroSubtitle" dynamodbav:"hero_subtitle"`
	HeroDescription string `json:"heroDescription" dynamodbav:"hero_description"`
	HeroButtonText  string `json:"heroButtonText" dynamodbav:"hero_button_text"`
	HeroButtonLink  string `json:"heroButtonLink" dynamodbav:"hero_button_link"`
	HeroImage       string `json:"heroImage" dynamodbav:"hero_image"`

	WhyHeading string     `json:"whyHeading" dynamodbav:"why_heading"`
	WhySlides  []WhySlide `json:"whySlides" dynamodbav:"why_slides"`
	WhyCtaText string     `json:"whyCtaText" dynamodbav:"why_cta_text"`
	WhyCtaLink string     `json:"whyCtaLink" dynamodbav:"why_cta_link"`

	OwnershipHeading     string           `json:"ownershipHeading" dynamodbav:"ownership_heading"`
	OwnershipTabOneLabel string           `json:"ownershipTabOneLabel" dynamodbav:"ownership_tab_one_label"`
	OwnershipTabTwoLabel string           `json:"ownershipTabTwoLabel" dynamodbav:"ownership_tab_two_label"`
	OwnershipSlides      []OwnershipSlide `json:"ownershipSlides" dynamodbav:"ownership_slides"`

	EntityTableHeading string      `json:"entityTableHeading" dynamodbav:"entity_table_heading"`
	EntityTableRows    []EntityRow `json:"entityTableRows" dynamodbav:"entity_table_rows"`

	EntityTypesHeading     string            `json:"entityTypesHeading" dynamodbav:"entity_types_heading"`
	EntityTypesDescription string            `json:"entityTypesDescription" dynamodbav:"entity_types_description"`
	EntityTypesSlides      []EntityTypeSlide `json:"entityTypesSlides" dynamodbav:"entity_types_slides"`

	EntityChooseHeading    string                 `json:"entityChooseHeading" dynamodbav:"entity_choose_heading"`
	EntityChooseSubheading string                 `json:"entityChooseSubheading" dynamodbav:"entity_choose_subheading"`
	EntityChooseQuestions  []EntityChooseQuestion `json:"entityChooseQuestions" dynamodbav:"entity_choose_questions"`

	DocumentsHeading    string          `json:"documentsHeading" dynamodbav:"documents_heading"`
	DocumentsSubheading string          `json:"documentsSubheading" dynamodbav:"documents_subheading"`
	DocumentEntityTabs  []ChooseOption  `json:"documentEntityTabs" dynamodbav:"document_entity_tabs"`
	DocumentGroups      []DocumentGroup `json:"documentGroups" dynamodbav:"document_groups"`

	LocationsHeading    string          `json:"locationsHeading" dynamodbav:"locations_heading"`
	LocationsSubheading string          `json:"locationsSubheading" dynamodbav:"locations_subheading"`
	LocationsSlides     []LocationSlide `json:"locationsSlides" dynamodbav:"locations_slides"`

	IntroHeading string           `json:"introHeading" dynamodbav:"intro_heading"`
	IntroText    string           `json:"introText" dynamodbav:"intro_text"`
	Sections     []ContentSection `json:"sections" dynamodbav:"sections"`

	FAQHeading string `json:"faqHeading" dynamodbav:"faq_heading"`
	FAQs       []FAQ  `json:"faqs" dynamodbav:"faqs"`

	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}
