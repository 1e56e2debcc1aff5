package crosswalk

// The crosswalk CSV follows the mapping-collection template consumed by the
// downstream CSV-to-OSCAL converter: a header row of column names, a second
// row of column descriptions, then one data row per mapping.

// ColumnNames are the template's column headers, in order.
var ColumnNames = []string{
	"$$Source_Resource",
	"$$Target_Resource",
	"$$Map_Source_ID_Ref_list",
	"$$Map_Target_ID_Ref_list",
	"$$Map_Relationship",
	"$Map_Confidence_Score",
	"$Map_Coverage",
}

// ColumnDescriptions are the template's second-row descriptions, aligned
// with ColumnNames.
var ColumnDescriptions = []string{
	"A reference to a resource that has the source controls of a mapping.",
	"A reference to a resource that has the target controls of a mapping.",
	"A list of source reference IDs.",
	"A list of target reference IDs.",
	"The relationship type for the mapping entry.",
	"An estimation of the confidence that this mapping is correct and accurate expressed as percentage.",
	"An estimation of the percentage coverage of the targets by the sources.",
}

// DefaultConfidence is the confidence score stamped on generated rows.
const DefaultConfidence = "100%"
