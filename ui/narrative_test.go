package ui

import (
	"regexp"
	"strings"
	"testing"

	domainprofiling "churnreport/domain/datareadiness/profiling"
	"churnreport/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSections(t *testing.T) {
	rendered := RenderSections([]Section{{
		Title: "Modelo",
		Blocks: []Block{
			{Markdown: "La **regresión logística**"},
			{LaTeX: `P(Y=1|X) < 1`},
		},
	}})

	require.Len(t, rendered, 1)
	require.Len(t, rendered[0].Blocks, 2)
	assert.Contains(t, string(rendered[0].Blocks[0]), "<strong>regresión logística</strong>")
	assert.Equal(t, `<div class="math">\[P(Y=1|X) &lt; 1\]</div>`, string(rendered[0].Blocks[1]))
}

func TestModelSections(t *testing.T) {
	sections := ModelSections()
	require.NotEmpty(t, sections)

	var formulas int
	for _, s := range sections {
		for _, b := range s.Blocks {
			if b.LaTeX != "" {
				formulas++
			}
		}
	}
	assert.GreaterOrEqual(t, formulas, 3, "linear, logistic and L1 formulas")
}

func TestRemarks(t *testing.T) {
	r := &report.Report{
		Target: &domainprofiling.TargetDistribution{
			Variable: "Churn",
			Classes: []domainprofiling.ClassShare{
				{Label: "Se queda (0)", Percent: 50},
				{Label: "Se retira (1)", Percent: 50},
			},
		},
		Missing: []domainprofiling.MissingDescriptor{
			{Variable: "Tenure", NMissing: 264, PctMissing: 4.69},
			{Variable: "WarehouseToHome", NMissing: 251, PctMissing: 4.46},
		},
		ColumnsWithMissing: 2,
	}

	target := TargetRemark(r)
	assert.Contains(t, target, "balanceada")
	assert.NotContains(t, target, "desbalance")
	assert.Contains(t, target, "50% se queda (0)")

	missing := MissingRemark(r)
	assert.True(t, strings.HasPrefix(missing, "Existen 2 variables"))
	assert.Contains(t, missing, "4.69%")

	assert.Equal(t, "No existen variables con presencia de valores NA.", MissingRemark(&report.Report{}))
}

func TestPieChart(t *testing.T) {
	empty, err := PieChart(nil, 320)
	require.NoError(t, err)
	assert.Empty(t, string(empty))

	chart, err := PieChart(&domainprofiling.TargetDistribution{
		Variable: "Churn",
		Total:    10,
		Classes: []domainprofiling.ClassShare{
			{Label: "Se queda (0)", Count: 8, Percent: 80},
			{Label: "Se retira (1)", Count: 2, Percent: 20},
		},
	}, 320)
	require.NoError(t, err)
	svg := string(chart)
	assert.True(t, strings.HasPrefix(svg, "<svg"), "no XML prolog inside the page")
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.Contains(t, svg, "80.0%")
	assert.Contains(t, svg, "Se retira (1)")

	arcs := svgArc.FindAllStringSubmatch(svg, -1)
	require.Len(t, arcs, 2)
	assert.Equal(t, "1", arcs[0][1], "the majority wedge spans more than half the circle")
	assert.Equal(t, "0", arcs[1][1])
	for _, arc := range arcs {
		assert.Equal(t, "0", arc[2], "wedges turn clockwise")
	}

	single, err := PieChart(&domainprofiling.TargetDistribution{
		Variable: "Churn",
		Total:    3,
		Classes:  []domainprofiling.ClassShare{{Label: "0", Count: 3, Percent: 100}},
	}, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(single), "<path"))
	assert.Len(t, svgArc.FindAllString(string(single), -1), 2, "a full circle is two half arcs")
	assert.Contains(t, string(single), "100.0%")
}

// svgArc captures the large-arc and sweep flags of an SVG arc command
var svgArc = regexp.MustCompile(`A[-0-9.e+]+,[-0-9.e+]+ 0 ([01]) ([01]) `)
