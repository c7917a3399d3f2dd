package types

// ExpectedColumns is the minimum input schema for the gift log, in canonical
// order. Ingestion fails the run when any of these is absent.
var ExpectedColumns = []string{
	"Donor ID",
	"Donor Segment",
	"Donor Full Name",
	"Donor Country",
	"Donor State",
	"Donor City",
	"Donor Zip",
	"Gift ID",
	"Gift Date",
	"Gift Amount",
	"Channel",
	"Campaign Name",
	"Fund/Designation",
	"Gift Type",
}

// DerivedColumns are appended after ExpectedColumns in the enriched output,
// in exactly this order. Downstream consumers key off the ordering.
var DerivedColumns = []string{
	"Last Gift",
	"Days Since Last Gift",
	"Recency Score",
	"Total Gifts",
	"Frequency Score",
	"Total Amount",
	"Monetary Score",
	"RFM Score",
	"RFM Segment",
}
