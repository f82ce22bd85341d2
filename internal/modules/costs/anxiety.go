package costs

func anxietyCosts(r *resolver, income float64) DisorderCosts {
	duration := r.val(ParamAnxietyDuration)
	conduct := r.val(ParamAnxietyConductRisk)
	abdominalRisk := r.val(ParamAbdominalPainRisk)
	abdominalYears := r.val(ParamAbdominalPainDuration)

	mother := SubjectCosts{
		HealthSocial: r.val(ParamAnxietyYearlyCost) * duration,
		QALY:         r.val(ParamAnxietyQualityLoss) * duration * r.val(ParamQALYValue),
		Productivity: r.val(ParamAnxietyWeeksLost) * income * duration,
	}

	baby := SubjectCosts{
		HealthSocial: r.val(ParamPrematureBirthCost)*r.val(ParamAnxietyPrematureRisk)/100 +
			r.val(ParamAnxietyEmotionalCost) +
			r.val(ParamConductHealthCost)*conduct/100 +
			r.val(ParamAbdominalPainPublicCost)*abdominalRisk/100*abdominalYears,
		Education: r.val(ParamAnxietyEducationCost),
		Justice:   r.val(ParamConductJusticeCost) * conduct / 100,

		QALY: r.val(ParamAnxietyQALYCost) +
			r.val(ParamAnxietyEmotionalQALYCost) +
			r.val(ParamConductQALYCost)*conduct/100,
		Productivity: r.val(ParamAnxietyEmotionalProductivity) +
			r.val(ParamConductProductivityCost)*conduct/100 +
			r.val(ParamAbdominalPainCost)*abdominalRisk/100*abdominalYears,
		Other: r.val(ParamCrimeVictimCost)*conduct/100 +
			(r.val(ParamAbdominalPainUnpaidCare)+r.val(ParamAbdominalPainOutOfPocket))*abdominalRisk/100*abdominalYears,
	}

	return DisorderCosts{Mother: mother, Baby: baby}
}
