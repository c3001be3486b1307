// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// Tone selects the default voice of every generated reply.
type Tone string

const (
	ToneCalming Tone = "RAUHOITTAVA"
	ToneNeutral Tone = "NEUTRAALI"
	ToneFirm    Tone = "JAMAKKA"
)

// Industry is the tenant's line of business. Profile rows written under
// since-removed enum values are remapped by NormalizeIndustry; unknown
// values fall back to IndustryOther rather than failing validation.
type Industry string

const (
	IndustryCommerce       Industry = "KAUPPA"
	IndustryConstruction   Industry = "RAKENTAMINEN_REMONTOINTI"
	IndustryConsumer       Industry = "PALVELUT_KULUTTAJILLE"
	IndustryBusiness       Industry = "PALVELUT_YRITYKSILLE"
	IndustryIT             Industry = "IT_DIGIPALVELUT"
	IndustryHealth         Industry = "TERVEYS_HYVINVOINTI"
	IndustryEducation      Industry = "KOULUTUS_VALMENNUS"
	IndustryRealEstate     Industry = "KIINTEISTOT_ASUMINEN"
	IndustryHospitality    Industry = "RAVINTOLA_MATKAILU"
	IndustryProfessional   Industry = "TALOUS_LAKI_ASIANTUNTIJA"
	IndustryAssociation    Industry = "YHDISTYS_JARJESTO"
	IndustryOther          Industry = "MUU"
)

// CommunicationRole describes who is speaking for the tenant.
type CommunicationRole string

const (
	RoleCustomerService CommunicationRole = "ASIAKASPALVELU"
	RoleSales           CommunicationRole = "MYYNTI"
	RoleTechSupport     CommunicationRole = "TEKNINEN_TUKI"
	RoleManagement      CommunicationRole = "JOHTO"
)

// RefundPolicy is the tenant's compensation line.
type RefundPolicy string

const (
	RefundNever      RefundPolicy = "EI_LUVATA"
	RefundCaseByCase RefundPolicy = "TAPAUSKOHTAINEN"
	RefundNormal     RefundPolicy = "NORMAALI"
)

// CautionLevel controls how conditional the generated language is.
type CautionLevel string

const (
	CautionVeryCareful CautionLevel = "ERITTAIN_VAROVAINEN"
	CautionBalanced    CautionLevel = "TASAPAINOINEN"
	CautionDirect      CautionLevel = "SUORASUKAINEN"
)

// MaxForbiddenPhrases caps the tenant's forbidden-phrase list.
const MaxForbiddenPhrases = 20

// OrganizationProfile is the per-tenant voice and policy configuration
// applied to every generation. Owned by exactly one account; read-only
// during generation.
type OrganizationProfile struct {
	ID                string            `json:"id"`
	AccountID         string            `json:"accountId"`
	CompanyName       string            `json:"companyName"`
	Teitittely        bool              `json:"teitittely"`
	DefaultTone       Tone              `json:"defaultTone"`
	Industry          Industry          `json:"industry"`
	CommunicationRole CommunicationRole `json:"communicationRole"`
	RefundPolicy      RefundPolicy      `json:"refundPolicy"`
	CautionLevel      CautionLevel      `json:"cautionLevel"`
	ForbiddenPhrases  []string          `json:"forbiddenPhrases"`
	Signature         string            `json:"signature"`
	CreatedAt         int64             `json:"createdAt"`
	UpdatedAt         int64             `json:"updatedAt"`
}

// NormalizeIndustry maps stored industry values, including historical enum
// values, onto the current set. Unknown values map to IndustryOther so that
// old profile rows keep generating instead of failing validation.
func NormalizeIndustry(value string) Industry {
	switch value {
	case "AUTOKAUPPA", "VERKKOKAUPPA":
		return IndustryCommerce
	case "PALVELUYRITYS":
		return IndustryConsumer
	case "IT_SAAS":
		return IndustryIT
	case "TERVEYSPALVELUT":
		return IndustryHealth
	case "KIINTEISTOT":
		return IndustryRealEstate
	case string(IndustryCommerce),
		string(IndustryConstruction),
		string(IndustryConsumer),
		string(IndustryBusiness),
		string(IndustryIT),
		string(IndustryHealth),
		string(IndustryEducation),
		string(IndustryRealEstate),
		string(IndustryHospitality),
		string(IndustryProfessional),
		string(IndustryAssociation):
		return Industry(value)
	default:
		return IndustryOther
	}
}

// Label returns the human-readable Finnish label for the policy layer.
func (i Industry) Label() string {
	switch i {
	case IndustryCommerce:
		return "Kauppa (verkkokauppa / kivijalka)"
	case IndustryConstruction:
		return "Rakentaminen ja remontointi"
	case IndustryConsumer:
		return "Palvelut kuluttajille"
	case IndustryBusiness:
		return "Palvelut yrityksille"
	case IndustryIT:
		return "IT ja digipalvelut"
	case IndustryHealth:
		return "Terveys ja hyvinvointi"
	case IndustryEducation:
		return "Koulutus ja valmennus"
	case IndustryRealEstate:
		return "Kiinteistöt ja asuminen"
	case IndustryHospitality:
		return "Ravintola ja matkailu"
	case IndustryProfessional:
		return "Talous, laki ja asiantuntijapalvelut"
	case IndustryAssociation:
		return "Yhdistys / järjestö"
	default:
		return "Muu"
	}
}

// Label returns the human-readable Finnish label for the policy layer.
func (r CommunicationRole) Label() string {
	switch r {
	case RoleCustomerService:
		return "Asiakaspalvelu"
	case RoleSales:
		return "Myynti"
	case RoleTechSupport:
		return "Tekninen tuki"
	case RoleManagement:
		return "Johto / vastuuhenkilö"
	default:
		return string(r)
	}
}

// Label returns the human-readable Finnish label for the policy layer.
func (p RefundPolicy) Label() string {
	switch p {
	case RefundNever:
		return "Hyvityksiä ei luvata viesteissä."
	case RefundCaseByCase:
		return "Hyvitykset käsitellään tapauskohtaisesti."
	default:
		return "Hyvitykset ovat osa normaalia asiakaspalvelua."
	}
}

// Label returns the human-readable Finnish label for the policy layer.
func (l CautionLevel) Label() string {
	switch l {
	case CautionVeryCareful:
		return "Erittäin varovainen"
	case CautionBalanced:
		return "Tasapainoinen"
	default:
		return "Suorasukainen mutta asiallinen"
	}
}
