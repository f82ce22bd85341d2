package costs

// Catalog names read by the cost formulas. Every name listed here must be
// present in the loaded catalog; a missing one aborts the computation.
const (
	// Economic
	ParamWeeklyIncome        = "Average weekly income of a woman"
	ParamEmployedBeforeBirth = "Share of women employed before birth"
	ParamReturnToWork        = "Share of women returning to work after birth"
	ParamFullTimeReturn      = "Share of women returning full time"
	ParamQALYValue           = "Value of one QALY year"
	ParamValueOfLife         = "Value of a statistical life"

	// Medical
	ParamPrevalenceDepression = "Prevalence of depression"
	ParamPrevalenceAnxiety    = "Prevalence of anxiety"
	ParamPrevalencePsychosis  = "Prevalence of psychosis"

	// Shared child-outcome costs
	ParamConductHealthCost       = "Health insurance cost of conduct problems per case"
	ParamConductProductivityCost = "Productivity loss cost of conduct problems per case"
	ParamCrimeVictimCost         = "Total additional cost for crime victims per case"
	ParamPrematureBirthCost      = "Public sector cost of a premature birth"

	// Depression, mother
	ParamDepressionPublicCost  = "Public sector cost attributable to perinatal depression"
	ParamDepressionDuration    = "Average duration of perinatal depression"
	ParamDepressionQualityLoss = "Quality of life loss index"
	ParamDepressionWeeksLost   = "Work weeks lost each year"

	// Depression, baby
	ParamMaternalDepressionCost  = "Public sector cost of maternal depression"
	ParamEmotionalProblemsCost   = "Cost of emotional problems"
	ParamConductProbability      = "Additional probability of conduct problems"
	ParamDepressionEducationCost = "Additional education costs"
	ParamDepressionJusticeCost   = "Total public sector justice cost"
	ParamConductQALYLoss         = "Quality of life loss from a conduct problem (QALY)"
	ParamEmotionalQALYCost       = "Additional cost of emotional problems (QALY)"
	ParamChildDeathProbability   = "Additional probability of child death"
	ParamEmotionalProductivity   = "Productivity loss cost of emotional problems"
	ParamSchoolDropOutCost       = "Cost of leaving school without qualification"

	// Anxiety, mother
	ParamAnxietyYearlyCost  = "Yearly attributable cost of perinatal anxiety per woman"
	ParamAnxietyDuration    = "Average duration of anxiety"
	ParamAnxietyQualityLoss = "Quality of life loss for the mother with anxiety"
	ParamAnxietyWeeksLost   = "Work weeks lost each year with anxiety"

	// Anxiety, baby
	ParamAnxietyPrematureRisk         = "Additional risk of premature birth with anxiety"
	ParamAnxietyEmotionalCost         = "Cost of emotional problems with anxiety"
	ParamAnxietyConductRisk           = "Additional risk of conduct problems"
	ParamAbdominalPainPublicCost      = "Public sector yearly cost of chronic paediatric abdominal pain"
	ParamAbdominalPainRisk            = "Additional risk of chronic abdominal pain with anxiety"
	ParamAbdominalPainDuration        = "Average duration of chronic abdominal pain (years)"
	ParamAnxietyEducationCost         = "Education cost of emotional problems with anxiety"
	ParamConductJusticeCost           = "Justice cost of conduct problems per case"
	ParamAnxietyQALYCost              = "Quality of life loss cost with anxiety (QALY)"
	ParamAnxietyEmotionalQALYCost     = "Cost of emotional problems (QALY)"
	ParamConductQALYCost              = "Cost of conduct problems per case (QALY)"
	ParamAnxietyEmotionalProductivity = "Productivity loss cost of emotional problems with anxiety"
	ParamAbdominalPainCost            = "Cost of chronic abdominal pain"
	ParamAbdominalPainUnpaidCare      = "Unpaid care cost of chronic abdominal pain"
	ParamAbdominalPainOutOfPocket     = "Out-of-pocket cost of chronic abdominal pain"

	// Psychosis, mother
	ParamPsychosisHealthCost     = "Health insurance cost of a psychosis"
	ParamPsychosisSuicideRisk    = "Additional risk of suicide with psychosis"
	ParamPsychosisQualityLoss    = "Quality of life loss for a psychosis"
	ParamPsychosisDuration       = "Average duration of a psychosis"
	ParamSchizophreniaProdLoss   = "Productivity loss for a schizophrenia episode"
	ParamSchizophreniaShare      = "Share of schizophrenia among psychoses"
	ParamSchizophreniaUnpaidCare = "Unpaid care cost for schizophrenia"

	// Psychosis, baby
	ParamPsychosisPrematureRisk  = "Additional risk of premature birth with psychosis"
	ParamPsychosisChildDeathRisk = "Additional risk of child death with psychosis"
)

// valueOfLifeUnit scales ParamValueOfLife, which the catalog stores in millions.
const valueOfLifeUnit = 1e6

// prevalenceParams maps each disorder to its prevalence parameter.
var prevalenceParams = map[Disorder]string{
	Depression: ParamPrevalenceDepression,
	Anxiety:    ParamPrevalenceAnxiety,
	Psychosis:  ParamPrevalencePsychosis,
}
