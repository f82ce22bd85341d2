package costs

func psychosisCosts(r *resolver, _ float64) DisorderCosts {
	valueOfLife := r.val(ParamValueOfLife) * valueOfLifeUnit
	schizophrenia := r.val(ParamSchizophreniaShare)

	mother := SubjectCosts{
		HealthSocial: r.val(ParamPsychosisHealthCost),
		QALY: r.val(ParamPsychosisSuicideRisk)/100*valueOfLife +
			r.val(ParamPsychosisQualityLoss)*r.val(ParamPsychosisDuration)*r.val(ParamQALYValue),
		Productivity: r.val(ParamSchizophreniaProdLoss) * schizophrenia / 100,
		Other:        r.val(ParamSchizophreniaUnpaidCare) * schizophrenia / 100,
	}

	// Child death is only counted for the schizophrenia share of psychoses.
	baby := SubjectCosts{
		HealthSocial: r.val(ParamPsychosisPrematureRisk) / 100 * r.val(ParamPrematureBirthCost),
		QALY:         r.val(ParamPsychosisChildDeathRisk) / 100 * valueOfLife * schizophrenia / 100,
	}

	return DisorderCosts{Mother: mother, Baby: baby}
}
