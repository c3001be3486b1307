// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import "github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"

// seedTemplates returns the built-in situation templates. Field order is
// the declaration order used for required-field validation.
func seedTemplates() []*datatypes.Template {
	return []*datatypes.Template{
		{
			Key:         "TOIMITUSVIIVE",
			Title:       "Toimitusviive",
			Description: "Vastaa asiakkaalle, kun tilaus on myöhässä tai toimitusaika venyy.",
			Fields: []datatypes.TemplateField{
				{
					Key:         datatypes.FieldKeyCustomerMessage,
					Label:       "Asiakkaan viesti (valinnainen)",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Kopioi asiakkaan lähettämä viesti tai yhteenveto",
					HelpText:    "Liitä asiakkaan alkuperäinen viesti, jos se on saatavilla. Voit jättää tyhjäksi.",
				},
				{
					Key:         "orderOrCaseId",
					Label:       "Tilaus-/tapausnumero",
					Kind:        datatypes.FieldKindText,
					Placeholder: "#123456",
				},
				{
					Key:         "timeframe",
					Label:       "Arvioitu aikataulu",
					Kind:        datatypes.FieldKindText,
					Placeholder: `Esim. "lähetys ensi maanantaina"`,
				},
				{
					Key:         "companyOffer",
					Label:       "Yrityksen tarjoama ratkaisu",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Esim. hyvitys, seuranta tai varavaihtoehto (yrityksen ehdotus)",
				},
			},
			BasePromptText: "Asiakas odottaa toimitusta. Myönnä viive rehellisesti, kerro syy vain jos se on varmasti totta ja tarjoa konkreettinen seuraava askel. Kerro selkeä uusi aikataulu tai miten tarkennus saadaan. Varmista, että asiakas kokee tulevansa kuulluksi.",
		},
		{
			Key:         "REKLAMAATIO_VIKA",
			Title:       "Reklamaatio / tuotevika",
			Description: "Käsittele reklamaatio, jossa tuote on viallinen tai ei toimi odotetusti.",
			Fields: []datatypes.TemplateField{
				{
					Key:      datatypes.FieldKeyCustomerMessage,
					Label:    "Asiakkaan viesti (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Liitä asiakkaan alkuperäinen viesti, jos se on saatavilla. Voit jättää tyhjäksi.",
				},
				{
					Key:         "productName",
					Label:       "Tuote",
					Kind:        datatypes.FieldKindText,
					Placeholder: `Esim. "SmartLamp X1"`,
				},
				{
					Key:   "orderOrCaseId",
					Label: "Tilaus-/tapausnumero",
					Kind:  datatypes.FieldKindText,
				},
				{
					Key:         "companyOffer",
					Label:       "Yrityksen tarjoama ratkaisu",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Uusi tuote, korjaus, hyvitys tms.",
				},
			},
			BasePromptText: "Kyseessä on reklamaatio. Pyydä lisäkuvia tai tarkennusta vain jos se on välttämätöntä. Korosta, että asia otetaan vakavasti ja kerro miten etenemme, esim. palautuslomake, tarkastus tai uusi tuote. Vältä syyttelyä.",
		},
		{
			Key:         "HYVITYSPYYNTO",
			Title:       "Hyvityspyyntö",
			Description: "Asiakas pyytää korvausta tai alennusta.",
			Fields: []datatypes.TemplateField{
				{
					Key:      datatypes.FieldKeyCustomerMessage,
					Label:    "Asiakkaan viesti (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Liitä asiakkaan alkuperäinen viesti, jos se on saatavilla. Voit jättää tyhjäksi.",
				},
				{
					Key:      datatypes.FieldKeyCustomerRequest,
					Label:    "Tilanteen kuvaus (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti, mitä asiakas toivoo tai mitä on tapahtunut. Voit jättää tyhjäksi, jos liitit asiakkaan viestin.",
				},
				{
					Key:         "impact",
					Label:       "Vaikutus asiakkaalle",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Lyhyt kuvaus tilanteen vaikutuksesta",
				},
				{
					Key:         "companyPolicy",
					Label:       "Yrityksen linjaus hyvityksistä",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Tiivistelmä politiikasta",
				},
				{
					Key:         "offeredCompensation",
					Label:       "Tarjottu hyvitys",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Esim. 20 € alennus tai lisäpalvelu",
				},
			},
			BasePromptText: "Asiakas pyytää hyvitystä. Kerro lyhyesti, miten tilanne arvioitiin ja mitä hyvityksiä voidaan tarjota. Jos hyvitystä ei voida antaa, perustele empaattisesti. Tarjoa vaihtoehtoista hyötyä tai jatkotoimea.",
		},
		{
			Key:         "PERUUTUS_PALAUTUS",
			Title:       "Peruutus tai palautus",
			Description: "Vastaa asiakkaalle tilauksen peruutuksesta tai palautuksesta.",
			Fields: []datatypes.TemplateField{
				{
					Key:      datatypes.FieldKeyCustomerMessage,
					Label:    "Asiakkaan viesti (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Liitä asiakkaan alkuperäinen viesti, jos se on saatavilla. Voit jättää tyhjäksi.",
				},
				{
					Key:      datatypes.FieldKeyCustomerRequest,
					Label:    "Tilanteen kuvaus (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti peruutus-/palautustilanne. Voit jättää tyhjäksi, jos liitit asiakkaan viestin.",
				},
				{
					Key:   "orderOrCaseId",
					Label: "Tilausnumero",
					Kind:  datatypes.FieldKindText,
				},
				{
					Key:         "orderStatus",
					Label:       "Tilauksen status",
					Kind:        datatypes.FieldKindText,
					Placeholder: `Esim. "lähetetty / varastolla"`,
				},
				{
					Key:         "returnInstructions",
					Label:       "Palautusohjeet",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Lyhyt ohjeistus pakkaamisesta, osoitteesta jne.",
				},
			},
			BasePromptText: "Asiakas haluaa perua tai palauttaa tilauksen. Kerro ystävällisesti, miten etenemme ja mitä tietoja tai toimenpiteitä tarvitaan. Jos palautus kustannetaan asiakkaan toimesta, kerro se selkeästi. Muista vahvistaa, milloin hyvitys käsitellään.",
		},
		{
			Key:         "HINNASTO_LASKUTUS",
			Title:       "Hinnasto / laskutus",
			Description: "Selvitä asiakkaan laskutukseen, veloituksiin tai hinnoitteluun liittyvä kysymys.",
			Fields: []datatypes.TemplateField{
				{
					Key:      "customerQuestion",
					Label:    "Tilanteen kuvaus (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti, mikä laskussa askarruttaa. Voit jättää tyhjäksi, jos liitit asiakkaan viestin.",
				},
				{
					Key:   "invoiceId",
					Label: "Lasku-/sopimusnumero",
					Kind:  datatypes.FieldKindText,
				},
				{
					Key:         "charges",
					Label:       "Kyseiset veloitukset",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Erittele summat tai tuotteet",
				},
				{
					Key:         "nextSteps",
					Label:       "Tarjottu jatkotoimi",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Esim. uusi lasku, tarkistus, hyvitys",
				},
			},
			BasePromptText: "Asiakas kysyy laskusta tai hinnoittelusta. Selitä veloitukset selkeästi. Tarjoa toimenpide, joka vie asiaa eteenpäin (tarkistus, oikaisu, maksuohje). Ole erityisen täsmällinen numeroiden kanssa.",
		},
		{
			Key:         "VARAUS_AIKATAULU",
			Title:       "Varaus / aikataulu",
			Description: "Vastaa ajanvaraukseen, aikatauluun tai kalenterimuutokseen liittyvään viestiin.",
			Fields: []datatypes.TemplateField{
				{
					Key:      datatypes.FieldKeyCustomerRequest,
					Label:    "Tilanteen kuvaus (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti, mitä aikaa/varausta halutaan muuttaa. Voit jättää tyhjäksi, jos liitit asiakkaan viestin.",
				},
				{
					Key:         "currentTime",
					Label:       "Nykyinen aika / varaus",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Esim. 12.3. klo 10",
				},
				{
					Key:         "availableSlots",
					Label:       "Vaihtoehtoiset ajat",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Listaa 1–3 sopivaa vaihtoehtoa",
				},
				{
					Key:         "additionalInfo",
					Label:       "Lisätiedot",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Tarvittavat valmistelut yms.",
				},
			},
			BasePromptText: "Asiakas haluaa varata tai siirtää ajan. Ehdota selkeästi vaihtoehdot ja kerro, miten muutos vahvistetaan. Jos aikaa ei voida tarjota, tarjoa seuraavaksi paras ratkaisu tai jonotus.",
		},
		{
			Key:         "ASIAKAS_TYYTYMATON",
			Title:       "Asiakas tyytymätön",
			Description: "Hallitse tilanne, jossa asiakas on yleisesti tyytymätön palveluun.",
			Fields: []datatypes.TemplateField{
				{
					Key:      "customerFeedback",
					Label:    "Tilanteen kuvaus (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti, mistä tyytymättömyys johtuu. Voit jättää tyhjäksi, jos liitit asiakkaan viestin.",
				},
				{
					Key:         "rootCause",
					Label:       "Taustatiedot",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Lyhyt selitys tilanteen syystä",
				},
				{
					Key:         "resolutionPlan",
					Label:       "Ratkaisuehdotus",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Miten tilanne hoidetaan",
				},
				{
					Key:         "followUpOwner",
					Label:       "Kuka hoitaa jatkon",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Nimi/sähköposti tai tiimi",
				},
			},
			BasePromptText: "Asiakas on yleisesti tyytymätön palveluun. Kiitä palautteesta ja tunnista asiakkaan kokemus lyhyesti. Pahoittele korkeintaan kerran ja vain tarvittaessa (vältä ylipahoittelua). Älä syyllistä ketään. Älä lupaa hyvityksiä. Pyydä korkeintaan 2–3 täsmällistä tarkennusta vain jos se on välttämätöntä asian selvittämiseksi. Kerro selkeä eteneminen: mitä tarkistamme ja mikä on seuraava askel. Jos 'Kuka hoitaa jatkon' on annettu, nimeä se. Muuten käytä muotoa 'asiakaspalvelumme palaa asiaan'. Pidä viesti lyhyenä ja jämäkkänä, ilman sisäistä 'toimenpidesuunnitelma'-jargonia.",
		},
		{
			Key:         "VIESTI_EPASELVA",
			Title:       "Viesti epäselvä",
			Description: "Asiakkaan viesti on epäselvä, joten pyydä lisätietoja hienovaraisesti.",
			Fields: []datatypes.TemplateField{
				{
					Key:      datatypes.FieldKeyCustomerMessage,
					Label:    "Asiakkaan viesti (valinnainen)",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Liitä asiakkaan alkuperäinen viesti, jos se on saatavilla. Voit jättää tyhjäksi.",
				},
				{
					Key:         "missingInfo",
					Label:       "Puuttuvat tiedot",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Mitä tarvitsemme, jotta asia selviää",
				},
				{
					Key:         "nextSteps",
					Label:       "Seuraava askel",
					Kind:        datatypes.FieldKindText,
					Placeholder: "Esim. tiimin tarkistus, soitto tms.",
				},
			},
			BasePromptText: "Asiakkaan viesti on vajaa. Pyydä kohteliaasti lisätietoja ja kerro, miksi tiedot tarvitaan. Kerro myös, mitä tapahtuu, kun tiedot on saatu.",
		},
		{
			Key:         "PERUUTUS_YRITYS",
			Title:       "Peruminen yrityksen toimesta",
			Description: "Vastaa asiakkaalle, kun tilausta ei voida toimittaa tai palvelua toteuttaa ja yritys peruu.",
			Fields: []datatypes.TemplateField{
				{
					Key:   "orderNumber",
					Label: "Tilaus-/tapausnumero",
					Kind:  datatypes.FieldKindText,
				},
				{
					Key:      "cancellationReason",
					Label:    "Syy perumiseen (lyhyesti)",
					Kind:     datatypes.FieldKindTextarea,
					Required: true,
				},
				{
					Key:   "companyOffer",
					Label: "Yrityksen tarjoama vaihtoehto (valinnainen)",
					Kind:  datatypes.FieldKindTextarea,
				},
				{
					Key:         "refundInfo",
					Label:       "Maksun palautus (valinnainen)",
					Kind:        datatypes.FieldKindTextarea,
					Placeholder: "Esim. palautus 2–5 arkipäivässä",
				},
				{
					Key:   "whoHandlesFollowUp",
					Label: "Kuka hoitaa jatkon (valinnainen)",
					Kind:  datatypes.FieldKindText,
				},
			},
			BasePromptText: "Yritys peruu tilauksen tai palvelun, koska toimitus/toteutus ei onnistu. Kerro peruminen selkeästi ja lyhyesti (mitä perutaan ja miksi yleistasolla). Pahoittele korkeintaan kerran. Älä syyllistä asiakasta. Älä esitä perumista asiakkaan pyyntönä. Tarjoa mahdollinen vaihtoehto (uusi aikataulu/korvaava vaihtoehto) vain jos se on annettu syötteissä. Kerro selkeästi, mitä tapahtuu maksun suhteen (palautus/oikaisu ja arvioitu aikataulu, jos annettu). Pidä sävy asiallisena ja rauhallisena. Lopuksi kerro seuraava askel ja miten asiakas voi vastata.",
		},
		{
			Key:         "VIRHE_YRITYS",
			Title:       "Virhe yrityksen puolelta",
			Description: "Vastaa asiakkaalle, kun yritys on tehnyt virheen ja se tulee myöntää ja korjata asiallisesti.",
			Fields: []datatypes.TemplateField{
				{
					Key:      "customerFeedback",
					Label:    "Tilanteen kuvaus",
					Kind:     datatypes.FieldKindTextarea,
					HelpText: "Kuvaa lyhyesti tilanne omin sanoin. Voit jättää tämän tyhjäksi, jos asiakkaan viesti on jo liitetty.",
				},
				{
					Key:   "backgroundInfo",
					Label: "Taustatiedot (valinnainen)",
					Kind:  datatypes.FieldKindTextarea,
				},
				{
					Key:   "fixPlan",
					Label: "Korjaava toimenpide (valinnainen)",
					Kind:  datatypes.FieldKindTextarea,
				},
				{
					Key:   "companyOffer",
					Label: "Yrityksen tarjoama hyvitys tai kompromissi (valinnainen)",
					Kind:  datatypes.FieldKindTextarea,
				},
				{
					Key:   "whoHandlesFollowUp",
					Label: "Kuka hoitaa jatkon (valinnainen)",
					Kind:  datatypes.FieldKindText,
				},
			},
			BasePromptText: "Yritys on tehnyt virheen. Tavoite on myöntää virhe asiallisesti, korjata tilanne ja säilyttää luottamus. Käytä 'Tilanteen kuvaus' -kenttää tapahtumien pohjana. Jos asiakkaan viesti on annettu, vastaa siihen. Jos asiakkaan viestiä ei ole annettu, kirjoita viesti puhtaana ilmoituksena (älä kiitä yhteydenotosta). Pahoittele korkeintaan kerran ja vältä ylipahoittelua (ei 'vilpittömästi', 'syvästi', 'erittäin'). Kerro korjaava toimenpide ja aikataulu vain siltä osin kuin ne on annettu syötteissä. Älä lupaa hyvitystä, ellei yritys tarjoa sitä syötteissä. Jos 'Kuka hoitaa jatkon' on annettu, nimeä se; muuten käytä muotoa 'asiakaspalvelumme palaa asiaan'. Pidä vastaus lyhyenä, selkokielisenä ja rauhallisena.",
		},
	}
}
