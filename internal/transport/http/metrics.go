package httptransport

import "expvar"

var (
	metricExtractTotal  = expvar.NewInt("extract_total")
	metricExtractErrors = expvar.NewInt("extract_errors_total")

	metricRecommendTotal = expvar.NewInt("recommend_total")
	metricSlipsSaved     = expvar.NewInt("slips_saved_total")
)
