package calculator

// Model is the calculator edition. Professional unlocks extra features.
type Model int

const (
	ModelStandard Model = iota
	ModelProfessional
)

// String is the display indicator.
func (m Model) String() string {
	if m == ModelProfessional {
		return "PRO"
	}
	return "STD"
}

func (m Model) Toggle() Model {
	if m == ModelProfessional {
		return ModelStandard
	}
	return ModelProfessional
}

// Feature names a capability that a model may lack.
type Feature string

const (
	FeatureTVM          Feature = "TVM"
	FeatureAmortization Feature = "AMORT"
	FeatureNPV          Feature = "NPV"
	FeatureIRR          Feature = "IRR"
	FeatureNFV          Feature = "NFV"
	FeaturePB           Feature = "PB"
	FeatureDPB          Feature = "DPB"
	FeatureMIRR         Feature = "MIRR"
	FeatureBond         Feature = "BOND"
	FeatureDUR          Feature = "DUR"
	FeatureMDUR         Feature = "MDUR"
	FeatureSL           Feature = "SL"
	FeatureSYD          Feature = "SYD"
	FeatureDB           Feature = "DB"
	FeatureDBSL         Feature = "DB-SL"
	FeatureSLF          Feature = "SLF"
	FeatureDBF          Feature = "DBF"
	FeatureStatistics   Feature = "STAT"
	FeatureForecast     Feature = "FORECAST"
	FeatureBreakeven    Feature = "BRKEVN"
	FeatureProfit       Feature = "PROFIT"
	FeatureDate         Feature = "DATE"
)

var allFeatures = []Feature{
	FeatureTVM, FeatureAmortization, FeatureNPV, FeatureIRR, FeatureNFV,
	FeaturePB, FeatureDPB, FeatureMIRR, FeatureBond, FeatureDUR, FeatureMDUR,
	FeatureSL, FeatureSYD, FeatureDB, FeatureDBSL, FeatureSLF, FeatureDBF,
	FeatureStatistics, FeatureForecast, FeatureBreakeven, FeatureProfit, FeatureDate,
}

func proOnly(f Feature) bool {
	switch f {
	case FeatureNFV, FeaturePB, FeatureDPB, FeatureMIRR,
		FeatureDUR, FeatureMDUR, FeatureDB, FeatureDBSL, FeatureForecast,
		FeatureBreakeven:
		return true
	}
	return false
}

// Has reports whether the model offers f. The empty feature is always
// available.
func (m Model) Has(f Feature) bool {
	if f == "" || m == ModelProfessional {
		return true
	}
	return !proOnly(f)
}

// Features lists what the model offers.
func (m Model) Features() []Feature {
	var out []Feature
	for _, f := range allFeatures {
		if m.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// ProfessionalOnly lists the features the Standard model lacks.
func ProfessionalOnly() []Feature {
	var out []Feature
	for _, f := range allFeatures {
		if proOnly(f) {
			out = append(out, f)
		}
	}
	return out
}
