// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package prompt composes the layered completion input for reply generation.
//
// Four independent text layers are built per request and sent as separate
// messages:
//
//   - system: invariant behavioral constraints, never varies per tenant
//   - policy: tenant-specific, situation-independent guidance
//   - template: the chosen situation's instructions and required structure
//   - context: tenant voice settings plus the caller's literal input
//
// Everything in this package is pure; no I/O.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
	"github.com/AleutianAI/asiakasvastaus/services/llm"
)

// Layers holds the four prompt layers for one request. Transient, rebuilt
// per request, never persisted.
type Layers struct {
	System   string
	Policy   string
	Template string
	Context  string
}

// BuildLayers composes the prompt layers from the template definition, the
// tenant profile and the normalized generation input.
func BuildLayers(template *datatypes.Template, profile *datatypes.OrganizationProfile, input map[string]string) Layers {
	effectiveCustomerMessage := input[datatypes.FieldKeyCustomerMessage]
	if effectiveCustomerMessage == "" && template.Key == "HYVITYSPYYNTO" {
		// Single hard-coded fallback field; other templates intentionally
		// get no equivalent.
		effectiveCustomerMessage = input[datatypes.FieldKeyCustomerRequest]
	}

	system := strings.Join([]string{
		"Olet seniori suomalainen asiakaspalveluasiantuntija.",
		"Vastaa aina suomeksi.",
		"Älä tee kirjoitusvirheitä tai kielioppivirheitä.",
		"Kirjoita sujuvaa, luonnollista suomen kieltä. Vältä turhaa virkamiesmäisyyttä ja kaavamaisia fraaseja. Säilytä kuitenkin asiallinen ja kohtelias asiakaspalvelun sävy.",
		"Älä käytä emojeja, markdownia tai analyysiä.",
		"Älä keksi faktoja.",
		"Älä lupaa hyvityksiä, korvauksia tai aikatauluja, ellei niitä ole annettu syötteissä.",
		"Älä anna juridisia neuvoja.",
		"Älä syyllistä asiakasta tai yritystä.",
		"Vältä toistamasta ilmausta 'Ymmärrän, että...'. Käytä vaihtoehtoja kuten 'Olemme huomanneet', 'Tilanne on selvä', 'Kiitos viestistäsi', tai aloita suoraan asialla, erityisesti jämäkässä sävyssä.",
		"Vältä aloittamasta jokaista vastausta ilmauksella \"Ymmärrän\". Vaihtele aloitusta tilanteen mukaan (esim. \"Kiitos viestistä\", \"Kiitos palautteesta\", tai aloita suoraan asialla).",
		"Pidä vastaus järkevän mittaisena: tarpeeksi pitkä käsittelemään asia, mutta vältä tarpeetonta täytettä.",
		"Päätä vastaus aina kokonaiseksi: viimeinen rivi on selkeä lopetus (esim. \"Ystävällisin terveisin ...\").",
		"Älä jätä lausetta kesken.",
		"Pidä vastaus selkeänä ja ammattimaisena.",
		"Jos asiakkaan viestiä ei ole annettu, kirjoita viesti puhtaana ilmoituksena.",
		"Älä kiitä yhteydenotosta tai pyydä vastausta, ellei se ole välttämätöntä.",
		"Yrityksen oma-aloitteisessa ilmoituksessa älä pyydä asiakkaalta välitöntä vastausta, ellei asiakasviestissä ole esitetty kysymystä.",
		"Jos jatkotoimi vaatii yhteydenottoa, kerro että yritys ottaa yhteyttä.",
	}, " ")

	policyParts := []string{
		"Sallitut toiminnat: kohtelias tervehdys, tilanteen tiivis tunnistus, selkeät jatkoaskeleet, tarvittavat kysymykset, neutraali päättäminen.",
		"Kielletyt toiminnat: faktattomat väitteet, ehdottomat lupaukset, syyttely, painostus.",
		"Jos tietoja puuttuu, pyydä ne lyhyesti tai muotoile ehdollisesti.",
		"Jos asiakas on tunnepitoinen, rauhoita tilanne, osoita ymmärrys ja pidä sävy hallittuna.",
		"Jos konfliktia tulee purkaa, tunnista huoli, kerro selkeä etenemistapa ja pidä rajat.",
		"Jos asiakas ei ole esittänyt kysymystä tai pyyntöä, älä vaadi vastausta. Kerro, että yritys ottaa seuraavan askeleen tai on yhteydessä.",
		"Oletus: käytä selkokieltä ja vältä ammattijargonia.",
		fmt.Sprintf("Toimiala: %s.", profile.Industry.Label()),
		fmt.Sprintf("Viestinnän rooli: %s.", profile.CommunicationRole.Label()),
		fmt.Sprintf("Hyvityslinja: %s", profile.RefundPolicy.Label()),
		fmt.Sprintf("Varovaisuustaso: %s.", profile.CautionLevel.Label()),
		refundGuidance(profile.RefundPolicy),
		cautionGuidance(profile.CautionLevel),
	}
	if len(profile.ForbiddenPhrases) > 0 {
		policyParts = append(policyParts,
			fmt.Sprintf("Vältä ilmauksia: %s.", strings.Join(profile.ForbiddenPhrases, ", ")))
	}
	policy := strings.Join(policyParts, " ")

	templateLayer := strings.Join([]string{
		fmt.Sprintf("Tilanne: %s (%s).", template.Title, template.Key),
		"Rakenne on pakollinen: tervehdys, tilanteen tunnistus ja pahoittelu vain tarvittaessa, ratkaisupolku, seuraavat askeleet, lopetus, allekirjoitus.",
		"Vältä ilmauksia kuten: valitettavasti emme voi, emme voi tehdä mitään, se ei ole meidän vikamme.",
		"Käytä tilanteeseen sopivaa, turvallista ja asiakkaalle selkeästi ohjaavaa kieltä.",
		fmt.Sprintf("Tilannekohtaiset ohjeet: %s", template.BasePromptText),
	}, " ")

	customerMessageRule := "Asiakkaan viestiä ei ole annettu. Laadi hyödyllinen vastaus annettujen taustatietojen perusteella äläkä viittaa puuttuvaan viestiin."
	if effectiveCustomerMessage != "" {
		customerMessageRule = "Asiakkaan viesti on ensisijainen lähtökohta. Vastaa suoraan asiakkaan viestin sisältöön, pidä viesti tiiviinä ja ammattimaisena."
	}

	teitittelyRule := "Käytä sinuttelua."
	if profile.Teitittely {
		teitittelyRule = "Käytä teitittelyä."
	}

	context := strings.Join([]string{
		fmt.Sprintf("Yritys: %s.", profile.CompanyName),
		teitittelyRule,
		toneGuidance(profile.DefaultTone),
		customerMessageRule,
		fmt.Sprintf("Allekirjoitus: %s.", profile.Signature),
		"Kenttä 'companyOffer' tarkoittaa yrityksen tarjoamaa ratkaisua asiakkaalle, ei asiakkaan pyyntöä. Älä muotoile sitä muodossa 'kuten pyysitte'.",
		"Syöte (JSON):",
		serializeInput(input),
	}, "\n")

	return Layers{
		System:   system,
		Policy:   policy,
		Template: templateLayer,
		Context:  context,
	}
}

// BuildMessages converts the layers into the ordered completion input:
// system, then two developer messages, then the user message, each prefixed
// with its layer name.
func BuildMessages(layers Layers) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: "SYSTEM LAYER\n" + layers.System},
		{Role: llm.RoleDeveloper, Content: "POLICY LAYER\n" + layers.Policy},
		{Role: llm.RoleDeveloper, Content: "TEMPLATE LAYER\n" + layers.Template},
		{Role: llm.RoleUser, Content: "CONTEXT LAYER\n" + layers.Context},
	}
}

// serializeInput renders the caller's literal input verbatim as indented
// JSON. Go map marshaling sorts keys, which keeps the serialization stable
// across requests.
func serializeInput(input map[string]string) string {
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		// A map[string]string cannot fail to marshal; keep the layer total anyway.
		return "{}"
	}
	return string(data)
}
