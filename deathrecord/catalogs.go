package deathrecord

// Coding systems
const (
	systemLOINC       = "http://loinc.org"
	systemSNOMED      = "http://snomed.info/sct"
	systemSSN         = "http://hl7.org/fhir/sid/us-ssn"
	systemRaceOMB     = "urn:oid:2.16.840.1.113883.6.238"
	systemBirthSex    = "http://hl7.org/fhir/us/core/ValueSet/us-core-birthsex"
	systemV2Table0360 = "http://hl7.org/fhir/v2/0360/2.7"
	systemEducation   = "http://github.com/nightingaleproject/fhirDeathRecord/sdr/decedent/cs/EducationCS"
	systemPregnancy   = "http://github.com/nightingaleproject/fhirDeathRecord/sdr/causeOfDeath/vs/PregnancyStatusVS"
)

const sdBase = "http://nightingaleproject.github.io/fhirDeathRecord/StructureDefinition/"

// Decedent extension labels (StructureDefinition URLs)
const (
	extAge                 = sdBase + "sdr-decedent-Age-extension"
	extBirthplace          = sdBase + "sdr-decedent-Birthplace-extension"
	extDisposition         = sdBase + "sdr-decedent-Disposition-extension"
	extDispositionFacility = sdBase + "sdr-decedent-DispositionFacility-extension"
	extDispositionType     = sdBase + "sdr-decedent-DispositionType-extension"
	extEducation           = sdBase + "sdr-decedent-Education-extension"
	extFacilityName        = sdBase + "sdr-decedent-FacilityName-extension"
	extFuneralFacility     = sdBase + "sdr-decedent-FuneralFacility-extension"
	extIndustry            = sdBase + "sdr-decedent-Industry-extension"
	extJob                 = sdBase + "sdr-decedent-Job-extension"
	extOccupation          = sdBase + "sdr-decedent-Occupation-extension"
	extPlaceOfDeath        = sdBase + "sdr-decedent-PlaceOfDeath-extension"
	extPlaceOfDeathType    = sdBase + "sdr-decedent-PlaceOfDeathType-extension"
	extServedInArmedForces = sdBase + "sdr-decedent-ServerInArmedForces-extension"

	extInsideCityLimits = sdBase + "shr-core-InsideCityLimits-extension"
	extPostalAddress    = sdBase + "shr-core-PostalAddress-extension"

	extBirthSex  = "http://hl7.org/fhir/us/core/StructureDefinition/us-core-birthsex"
	extEthnicity = "http://hl7.org/fhir/us/core/StructureDefinition/us-core-ethnicity"
	extRace      = "http://hl7.org/fhir/us/core/StructureDefinition/us-core-race"
)

// Observation and condition profiles (meta.profile values)
const (
	profileMannerOfDeath       = sdBase + "sdr-causeOfDeath-MannerOfDeath"
	profileDateOfDeath         = sdBase + "sdr-causeOfDeath-ActualOrPresumedDateOfDeath"
	profileDatePronouncedDead  = sdBase + "sdr-causeOfDeath-DatePronoucedDead"
	profileCauseCondition      = sdBase + "sdr-causeOfDeath-CauseOfDeathCondition"
	profileContributeCondition = sdBase + "sdr-causeOfDeath-ContributeToDeathCondition"
	profileAutopsyPerformed    = sdBase + "sdr-causeOfDeath-AutopsyPerformed"
	profileAutopsyResults      = sdBase + "sdr-causeOfDeath-AutopsyResultsAvailable"
	profileExaminerContacted   = sdBase + "sdr-causeOfDeath-MedicalExaminerContacted"
	profileTobaccoUse          = sdBase + "sdr-causeOfDeath-TobaccoUseContributedToDeath"
	profilePregnancyTiming     = sdBase + "sdr-causeOfDeath-TimingOfRecentPregnancyInRelationToDeath"

	profileDeathRecordContents = sdBase + "sdr-deathRecord-DeathRecordContents"
)

// LOINC codes of the cover document and the findings
const (
	loincDeathCertificate   = "64297-5"
	loincDeathCertification = "69453-9"
	loincMannerOfDeath      = "69449-7"
	loincDateOfDeath        = "81956-5"
	loincDatePronouncedDead = "80616-6"
	loincAutopsyPerformed   = "85699-7"
	loincAutopsyResults     = "69436-4"
	loincExaminerContacted  = "74497-9"
	loincTobaccoUse         = "69443-0"
	loincPregnancyTiming    = "69442-2"
)
