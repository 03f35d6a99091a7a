package deathrecord

import (
	"strings"

	"github.com/nightingaleproject/csv2fhir/models/fhir"
	"github.com/nightingaleproject/csv2fhir/util"
)

// codeRule maps a trigger phrase to a controlled-vocabulary code. A rule
// matches when the input contains the trigger, case-insensitively.
type codeRule struct {
	trigger string
	code    string
}

// CodeTable is a total translation function from free text to a code. Rules
// are evaluated in order and the first match wins; inputs matching no rule
// get DefaultCode. Rules must therefore be ordered most-specific first.
type CodeTable struct {
	System      string
	DefaultCode string
	rules       []codeRule
}

// Lookup returns the code for the given free-text value
func (t *CodeTable) Lookup(text string) string {
	upper := strings.ToUpper(text)
	for _, rule := range t.rules {
		if strings.Contains(upper, strings.ToUpper(rule.trigger)) {
			return rule.code
		}
	}
	return t.DefaultCode
}

// Concept wraps the looked-up code and the original text into a concept
func (t *CodeTable) Concept(text string) fhir.CodeableConcept {
	return fhir.CodeableConcept{
		Coding: []fhir.Coding{{
			System:  util.StringPtr(t.System),
			Code:    util.StringPtr(t.Lookup(text)),
			Display: util.StringPtr(text),
		}},
	}
}

// EducationTable translates decedent education free text (PHIN VADS codes)
var EducationTable = &CodeTable{
	System:      systemEducation,
	DefaultCode: "UNK",
	rules: []codeRule{
		{"8th grade or less", "PHC1448"},
		{"9th through 12th grade", "PHC1449"},
		{"no diploma", "PHC1449"},
		{"High School Graduate or GED Completed", "PHC1450"},
		{"Some college credit, but no degree", "PHC1451"},
		{"Associate Degree", "PHC1452"},
		{"Bachelor's Degree", "PHC1453"},
		{"Master's Degree", "PHC1454"},
		{"Doctorate Degree or Professional Degree", "PHC1455"},
	},
}

// DispositionTable translates body disposition free text (SNOMED codes).
// "Other" sits last so that values naming a concrete method plus the word
// "other" resolve to the concrete method.
var DispositionTable = &CodeTable{
	System:      systemSNOMED,
	DefaultCode: "UNK",
	rules: []codeRule{
		{"Donation", "449951000124101"},
		{"Burial", "449971000124106"},
		{"Cremation", "449961000124104"},
		{"Entombment", "449931000124108"},
		{"Removal from state", "449941000124103"},
		{"Hospital Disposition", "455401000124109"},
		{"Other", "OTH"},
	},
}

// MannerTable translates manner of death free text (SNOMED codes); the
// default is "could not be determined"
var MannerTable = &CodeTable{
	System:      systemSNOMED,
	DefaultCode: "65037004",
	rules: []codeRule{
		{"Natural", "38605008"},
		{"Accident", "7878000"},
		{"Suicide", "44301001"},
		{"Homicide", "27935005"},
		{"Pending Investigation", "185973002"},
	},
}

// TobaccoTable translates the tobacco-contribution answer (SNOMED codes).
// "Unknown" precedes "No" because "no" is a substring of "unknown".
var TobaccoTable = &CodeTable{
	System:      systemSNOMED,
	DefaultCode: "261665006",
	rules: []codeRule{
		{"Unknown", "261665006"},
		{"Probably", "2931005"},
		{"Yes", "373066001"},
		{"No", "373067005"},
	},
}

// credentialTitles maps practitioner credential abbreviations to full titles
// (HL7 v2 table 0360)
var credentialTitles = map[string]string{
	"AA":     "Associate of Arts",
	"AAS":    "Associate of Applied Science",
	"ABA":    "Associate of Business Administration",
	"AE":     "Associate of Engineering",
	"AS":     "Associate of Science",
	"BA":     "Bachelor of Arts",
	"BBA":    "Bachelor of Business Administration",
	"BE":     "Bachelor or Engineering",
	"BFA":    "Bachelor of Fine Arts",
	"BN":     "Bachelor of Nursing",
	"BS":     "Bachelor of Science",
	"BSL":    "Bachelor of Science - Law",
	"BSN":    "Bachelor on Science - Nursing",
	"BT":     "Bachelor of Theology",
	"CANP":   "Certified Adult Nurse Practitioner",
	"CER":    "Certificate",
	"CMA":    "Certified Medical Assistant",
	"CNM":    "Certified Nurse Midwife",
	"CNP":    "Certified Nurse Practitioner",
	"CNS":    "Certified Nurse Specialist",
	"CPNP":   "Certified Pediatric Nurse Practitioner",
	"CRN":    "Certified Registered Nurse",
	"CTR":    "Certified Tumor Registrar",
	"DBA":    "Doctor of Business Administration",
	"DED":    "Doctor of Education",
	"DIP":    "Diploma",
	"DO":     "Doctor of Osteopathy",
	"EMT":    "Emergency Medical Technician",
	"EMTP":   "Emergency Medical Technician - Paramedic",
	"FPNP":   "Family Practice Nurse Practitioner",
	"HS":     "High School Graduate",
	"JD":     "Juris Doctor",
	"MA":     "Master of Arts",
	"MBA":    "Master of Business Administration",
	"MCE":    "Master of Civil Engineering",
	"MD":     "Doctor of Medicine",
	"MDA":    "Medical Assistant",
	"MDI":    "Master of Divinity",
	"ME":     "Master of Engineering",
	"MED":    "Master of Education",
	"MEE":    "Master of Electrical Engineering",
	"MFA":    "Master of Fine Arts",
	"MME":    "Master of Mechanical Engineering",
	"MS":     "Master of Science",
	"MSL":    "Master of Science - Law",
	"MSN":    "Master of Science - Nursing",
	"MT":     "Medical Technician",
	"MTH":    "Master of Theology",
	"NG":     "Non-Graduate",
	"NP":     "Nurse Practitioner",
	"PA":     "Physician Assistant",
	"PHD":    "Doctor of Philosophy",
	"PHE":    "Doctor of Engineering",
	"PHS":    "Doctor of Science",
	"PN":     "Advanced Practice Nurse",
	"PharmD": "Doctor of Pharmacy",
	"RMA":    "Registered Medical Assistant",
	"RN":     "Registered Nurse",
	"RPH":    "Registered Pharmacist",
	"SEC":    "Secretarial Certificate",
	"TS":     "Trade School Graduate",
}

// UnrecognizedCredential is the display used for credential abbreviations
// absent from the v2-0360 table
const UnrecognizedCredential = "Unrecognized credential"

// CredentialTitle resolves a credential abbreviation to its full title
func CredentialTitle(abbreviation string) string {
	if title, ok := credentialTitles[abbreviation]; ok {
		return title
	}
	return UnrecognizedCredential
}

// birthSexCoding derives the administrative birth-sex coding from the
// recorded gender
func birthSexCoding(gender string) fhir.Coding {
	code, display := "UNK", "Unspecified"
	switch strings.ToUpper(gender) {
	case "FEMALE", "F":
		code, display = "F", "Female"
	case "MALE", "M":
		code, display = "M", "Male"
	}
	return fhir.Coding{
		System:  util.StringPtr(systemBirthSex),
		Code:    util.StringPtr(code),
		Display: util.StringPtr(display),
	}
}
