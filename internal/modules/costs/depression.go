package costs

func depressionCosts(r *resolver, income float64) DisorderCosts {
	duration := r.val(ParamDepressionDuration)
	qalyValue := r.val(ParamQALYValue)
	conduct := r.val(ParamConductProbability)

	mother := SubjectCosts{
		HealthSocial: r.val(ParamDepressionPublicCost),
		QALY:         duration * r.val(ParamDepressionQualityLoss) * qalyValue,
		Productivity: duration * r.val(ParamDepressionWeeksLost) * income,
	}

	baby := SubjectCosts{
		HealthSocial: r.val(ParamMaternalDepressionCost) +
			r.val(ParamEmotionalProblemsCost) +
			(conduct/100)*r.val(ParamConductHealthCost),
		Education: r.val(ParamDepressionEducationCost),
		Justice:   r.val(ParamDepressionJusticeCost),

		QALY: r.val(ParamConductQALYLoss)*qalyValue*conduct/100 +
			r.val(ParamEmotionalQALYCost) +
			r.val(ParamChildDeathProbability)/100*r.val(ParamValueOfLife)*valueOfLifeUnit,
		Productivity: r.val(ParamEmotionalProductivity) +
			r.val(ParamConductProductivityCost)*conduct/100 +
			r.val(ParamSchoolDropOutCost),
		Other: r.val(ParamCrimeVictimCost) * conduct / 100,
	}

	return DisorderCosts{Mother: mother, Baby: baby}
}
