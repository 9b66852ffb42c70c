package cadastral

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const territoryPlanXML = `<?xml version="1.0" encoding="UTF-8"?>
<extract_cadastral_plan_territory>
  <details_statement/>
  <cadastral_blocks>
    <cadastral_block>
      <cadastral_number>77:01:0001001:123</cadastral_number>
    </cadastral_block>
  </cadastral_blocks>
</extract_cadastral_plan_territory>`

const commonDataXML = `<?xml version="1.0" encoding="UTF-8"?>
<extract_about_property_land>
  <land_record>
    <object>
      <common_data>
        <type><code>002001001000</code></type>
        <cad_number> 50:21:0110501:45 </cad_number>
      </common_data>
    </object>
  </land_record>
</extract_about_property_land>`

func TestExtract_TerritoryPlan(t *testing.T) {
	id, ok := Extract([]byte(territoryPlanXML))
	require.True(t, ok)
	assert.Equal(t, "77_01_0001001_123", id)
}

func TestExtract_CommonData(t *testing.T) {
	id, ok := Extract([]byte(commonDataXML))
	require.True(t, ok)
	assert.Equal(t, "50_21_0110501_45", id)
}

func TestExtract_TerritoryPlanTakesPrecedence(t *testing.T) {
	both := `<extract_cadastral_plan_territory>
  <common_data><cad_number>11:11:1111111:1</cad_number></common_data>
  <cadastral_block><cadastral_number>22:22:2222222</cadastral_number></cadastral_block>
</extract_cadastral_plan_territory>`

	m, ok, err := Lookup([]byte(both))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "22_22_2222222", m.Identifier)
	assert.Equal(t, "22:22:2222222", m.Raw)
	assert.Equal(t, TerritoryPlan.Name, m.Strategy)
}

func TestExtract_BlankTerritoryPlanValueIsNotFound(t *testing.T) {
	doc := `<extract_cadastral_plan_territory>
  <cadastral_block><cadastral_number>   </cadastral_number></cadastral_block>
  <common_data><cad_number>33:33:3333333:3</cad_number></common_data>
</extract_cadastral_plan_territory>`

	m, ok, err := Lookup([]byte(doc))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.Identifier)
}

func TestExtract_FallsBackWhenTerritoryPlanHasNoBlock(t *testing.T) {
	doc := `<extract_cadastral_plan_territory>
  <details_statement/>
  <common_data><cad_number>33:33:3333333:3</cad_number></common_data>
</extract_cadastral_plan_territory>`

	m, ok, err := Lookup([]byte(doc))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "33_33_3333333_3", m.Identifier)
	assert.Equal(t, CommonData.Name, m.Strategy)
}

func TestExtract_BlankCommonDataValueIsNotFound(t *testing.T) {
	id, ok := Extract([]byte(`<root><common_data><cad_number> </cad_number></common_data></root>`))
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestExtract_CadastralBlockIgnoredUnderOtherRoot(t *testing.T) {
	doc := `<extract_about_property_land>
  <cadastral_block><cadastral_number>77:01:0001001</cadastral_number></cadastral_block>
</extract_about_property_land>`

	_, ok := Extract([]byte(doc))
	assert.False(t, ok)
}

func TestExtract_NotFound(t *testing.T) {
	tests := map[string]string{
		"other root without common_data": `<report><number>77:01:0001001:1</number></report>`,
		"cad_number not direct child":    `<root><common_data><inner><cad_number>1:2</cad_number></inner></common_data></root>`,
		"empty cad_number":               `<root><common_data><cad_number/></common_data></root>`,
		"empty payload":                  ``,
		"text only":                      `just some text`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			id, ok := Extract([]byte(doc))
			assert.False(t, ok)
			assert.Empty(t, id)
		})
	}
}

func TestLookup_MalformedXML(t *testing.T) {
	_, ok, err := Lookup([]byte(`<extract_cadastral_plan_territory><cadastral_block>`))
	assert.False(t, ok)
	assert.Error(t, err)

	id, found := Extract([]byte(`<extract_cadastral_plan_territory><cadastral_block>`))
	assert.False(t, found)
	assert.Empty(t, id)
}

func TestLookup_FirstCommonDataWins(t *testing.T) {
	doc := `<root>
  <a><common_data><cad_number>1:1</cad_number></common_data></a>
  <b><common_data><cad_number>2:2</cad_number></common_data></b>
</root>`
	id, ok := Extract([]byte(doc))
	require.True(t, ok)
	assert.Equal(t, "1_1", id)
}

func TestLookup_CustomStrategies(t *testing.T) {
	m, ok, err := Lookup([]byte(territoryPlanXML), CommonData)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.Identifier)
}

func TestStrategies_Independent(t *testing.T) {
	root, err := Parse([]byte(territoryPlanXML))
	require.NoError(t, err)
	assert.Equal(t, "77:01:0001001:123", TerritoryPlan.Lookup(root))
	assert.Empty(t, CommonData.Lookup(root))

	root, err = Parse([]byte(commonDataXML))
	require.NoError(t, err)
	assert.Empty(t, TerritoryPlan.Lookup(root))
	assert.Equal(t, " 50:21:0110501:45 ", CommonData.Lookup(root))
}

func TestParse_RootElement(t *testing.T) {
	root, err := Parse([]byte(`<?xml version="1.0"?><!-- c --><extract_cadastral_plan_territory/>`))
	require.NoError(t, err)
	assert.Equal(t, xmlquery.ElementNode, root.Type)
	assert.Equal(t, TerritoryPlanRoot, root.Data)
}

func TestParse_RejectsSecondRootElement(t *testing.T) {
	_, err := Parse([]byte(`<root><common_data><cad_number>1:2</cad_number></common_data></root><b/>`))
	assert.ErrorIs(t, err, ErrMultipleRoots)

	m, ok, err := Lookup([]byte(`<root><common_data><cad_number>1:2</cad_number></common_data></root><b/>`))
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.Identifier)

	id, found := Extract([]byte(`<a><common_data><cad_number>1:2</cad_number></common_data></a><b/>`))
	assert.False(t, found)
	assert.Empty(t, id)
}

func TestParse_TrailingWhitespaceAndCommentsAllowed(t *testing.T) {
	root, err := Parse([]byte("<?xml version=\"1.0\"?>\n<root/>\n<!-- tail -->\n"))
	require.NoError(t, err)
	assert.Equal(t, "root", root.Data)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "77_01_0001001_123", Normalize("  77:01:0001001:123\n"))
	assert.Equal(t, "", Normalize(" \t "))
	assert.Equal(t, "abc", Normalize("abc"))
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(territoryPlanXML), 0644))

	id, ok, err := ExtractFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "77_01_0001001_123", id)

	_, _, err = ExtractFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}
