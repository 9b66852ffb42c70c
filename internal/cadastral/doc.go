// Package cadastral extracts the cadastral number from registry XML documents.
//
// # Document Shapes
//
// The registry publishes the same conceptual field in two schema shapes:
//
//	<extract_cadastral_plan_territory>
//	  ...
//	  <cadastral_block>
//	    <cadastral_number>77:01:0001001</cadastral_number>
//	  </cadastral_block>
//	</extract_cadastral_plan_territory>
//
//	<extract_about_property_land>
//	  <details_statement/>
//	  <land_record>
//	    <object>
//	      <common_data>
//	        <cad_number>77:01:0001001:123</cad_number>
//	      </common_data>
//	    </object>
//	  </land_record>
//	</extract_about_property_land>
//
// Lookups are an ordered list of strategies (DefaultStrategies). The territory
// plan shape is tried first and the common_data shape second. The first
// strategy that finds any text wins, even when that text is blank: a blank
// cadastral_number in a territory plan means "not found" and common_data is
// not consulted.
//
// # Normalization
//
// The raw value is trimmed and every ':' is replaced with '_' so the result
// can be used directly as a base file name:
//
//	"77:01:0001001:123" -> "77_01_0001001_123"
//
// # Usage
//
//	id, ok := cadastral.Extract(content)
//	if !ok {
//	    // malformed XML or neither shape carries a value
//	}
//
// Malformed XML is an expected outcome and is reported as "not found".
// Lookup exposes the parse error and the matching strategy for diagnostics.
package cadastral
