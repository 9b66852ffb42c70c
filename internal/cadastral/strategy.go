package cadastral

import (
	"github.com/antchfx/xmlquery"
)

// TerritoryPlanRoot is the root element of the cadastral plan of territory extract.
const TerritoryPlanRoot = "extract_cadastral_plan_territory"

// Strategy looks up a raw cadastral number in a parsed document.
// Lookup receives the document root element and returns "" when the
// strategy does not apply or finds nothing.
type Strategy struct {
	Name   string
	Lookup func(root *xmlquery.Node) string
}

// TerritoryPlan matches documents rooted at extract_cadastral_plan_territory
// and reads cadastral_block/cadastral_number anywhere below the root.
var TerritoryPlan = Strategy{
	Name: "territory-plan",
	Lookup: func(root *xmlquery.Node) string {
		if root.Data != TerritoryPlanRoot {
			return ""
		}
		return textOf(xmlquery.FindOne(root, ".//cadastral_block/cadastral_number"))
	},
}

// CommonData reads cad_number from the first common_data element below the
// root. cad_number must be a direct child of common_data.
var CommonData = Strategy{
	Name: "common-data",
	Lookup: func(root *xmlquery.Node) string {
		commonData := xmlquery.FindOne(root, ".//common_data")
		if commonData == nil {
			return ""
		}
		return textOf(xmlquery.FindOne(commonData, "cad_number"))
	},
}

// DefaultStrategies is the lookup order used by Extract.
var DefaultStrategies = []Strategy{TerritoryPlan, CommonData}

func textOf(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}
