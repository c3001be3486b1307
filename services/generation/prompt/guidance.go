// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package prompt

import (
	"strings"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
)

// Each enum value maps to exactly one fixed guidance string. Unknown values
// fall back to the safe default arm; profile rows may have been written
// under a since-removed enum value.

func toneGuidance(tone datatypes.Tone) string {
	switch tone {
	case datatypes.ToneCalming:
		return strings.Join([]string{
			"Sävy: rauhoittava.",
			"Käytä empaattista mutta hallittua kieltä, lyhyitä lauseita ja selkeää rauhoittelua.",
			"Vältä liiallista pahoittelua.",
		}, " ")
	case datatypes.ToneFirm:
		return strings.Join([]string{
			"Sävy: jämäkkä.",
			"Ole asiallinen ja kohtelias, mutta selkeä rajoista ja etenemisestä.",
			"Älä pahoittele ellei se ole välttämätöntä.",
		}, " ")
	default:
		return strings.Join([]string{
			"Sävy: neutraali.",
			"Ole suora, faktapohjainen ja tehokas.",
			"Vältä tunnepitoista kieltä.",
		}, " ")
	}
}

func cautionGuidance(level datatypes.CautionLevel) string {
	switch level {
	case datatypes.CautionVeryCareful:
		return strings.Join([]string{
			"Varovaisuustaso: erittäin varovainen.",
			"Käytä ehdollista kieltä, vältä syyllistämistä ja vältä myöntämistä.",
			"Pyydä puuttuvat tiedot ennen lupauksia.",
		}, " ")
	case datatypes.CautionDirect:
		return strings.Join([]string{
			"Varovaisuustaso: suorasukainen.",
			"Ole napakka ja selkeä, mutta pidä sävy kohteliaana.",
			"Vältä silti ehdottomia lupauksia ilman varmaa perustetta.",
		}, " ")
	default:
		return strings.Join([]string{
			"Varovaisuustaso: tasapainoinen.",
			"Pidä sävy selkeänä ja asiallisena, mutta käytä tarvittaessa ehdollisuutta.",
		}, " ")
	}
}

func refundGuidance(policy datatypes.RefundPolicy) string {
	switch policy {
	case datatypes.RefundNever:
		return strings.Join([]string{
			"Hyvityslinja: hyvityksiä ei luvata viesteissä.",
			"Jos asiakas pyytää hyvitystä, vastaa: voimme tarkistaa mahdollisuuden.",
		}, " ")
	case datatypes.RefundCaseByCase:
		return strings.Join([]string{
			"Hyvityslinja: tapauskohtainen.",
			"Hyvityksistä voi mainita ehdollisesti, mutta älä lupaa mitään varmaksi.",
		}, " ")
	default:
		return strings.Join([]string{
			"Hyvityslinja: normaali.",
			"Hyvityksen tai alennuksen voi tarjota yhtenä vaihtoehtona, mutta älä lupaa ilman valtuutta.",
		}, " ")
	}
}
