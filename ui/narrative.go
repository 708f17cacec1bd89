package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"churnreport/internal/report"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Block is one piece of narrative: markdown prose or a display formula
type Block struct {
	Markdown string
	LaTeX    string
}

// Figure is a static illustration served from the assets directory
type Figure struct {
	File    string
	Caption string
}

// Section is a titled run of narrative blocks, optionally followed by a figure
type Section struct {
	Title  string
	Blocks []Block
	Figure *Figure
}

// RenderedSection is a Section ready for the page template
type RenderedSection struct {
	Title  string
	Blocks []template.HTML
	Figure *Figure
}

// renderMarkdown converts markdown to HTML. Parsers keep state, so one is built per call.
func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}

// renderLaTeX wraps a formula for client-side typesetting
func renderLaTeX(tex string) template.HTML {
	var buf bytes.Buffer
	buf.WriteString(`<div class="math">\[`)
	template.HTMLEscape(&buf, []byte(strings.TrimSpace(tex)))
	buf.WriteString(`\]</div>`)
	return template.HTML(buf.String())
}

// RenderSections renders every block of every section
func RenderSections(sections []Section) []RenderedSection {
	out := make([]RenderedSection, 0, len(sections))
	for _, s := range sections {
		rs := RenderedSection{Title: s.Title, Figure: s.Figure}
		for _, b := range s.Blocks {
			if b.LaTeX != "" {
				rs.Blocks = append(rs.Blocks, renderLaTeX(b.LaTeX))
				continue
			}
			rs.Blocks = append(rs.Blocks, renderMarkdown(b.Markdown))
		}
		out = append(out, rs)
	}
	return out
}

const introduction = `
Este reporte presenta la aplicación de **técnicas de Machine Learning** para el análisis del comportamiento de los clientes de **MarMen**,
utilizando la información disponible en la base de datos de *E-Commerce*.
El objetivo principal es **identificar y clasificar a los clientes propensos a retirarse (variable *churn*)**,
para diseñar estrategias de retención e incentivos que reduzcan la fuga.

### Flujo del Análisis
1. **Exploración inicial de datos** y construcción de un **diccionario de variables**, con el fin de comprender la estructura y relevancia de la información disponible.
2. **Entrenamiento de un modelo de clasificación** (Regresión Logística con regularización L1), orientado a identificar las variables con mayor impacto en la predicción de la fuga.
3. **Evaluación de distintos umbrales de decisión**, comparando métricas como:
   - *Recall*
   - *Precisión*
   - *Balanced Accuracy*
   - *Accuracy*

   para analizar el desempeño en diferentes escenarios de negocio.
4. **Conclusiones y recomendaciones estratégicas**, basadas en los resultados obtenidos y en los objetivos específicos del cliente.
`

// IntroSection opens the report
func IntroSection() Section {
	return Section{Blocks: []Block{{Markdown: introduction}}}
}

// TargetRemark comments on the class balance of the outcome
func TargetRemark(r *report.Report) string {
	if r.Target == nil || len(r.Target.Classes) == 0 {
		return "No se encontró la variable objetivo en la base de datos."
	}

	shares := make([]string, 0, len(r.Target.Classes))
	for _, c := range r.Target.Classes {
		shares = append(shares, fmt.Sprintf("%.0f%% %s", c.Percent, strings.ToLower(c.Label)))
	}
	if !r.Target.Imbalanced {
		return fmt.Sprintf("La distribución de la respuesta de la variable *%s* está balanceada: %s.",
			r.Target.Variable, strings.Join(shares, ", "))
	}
	return fmt.Sprintf(
		"Se observa que la distribución de la respuesta de la variable *%s* está desbalanceada: %s. "+
			"Este desbalance se toma en cuenta al momento de analizar el resultado de las predicciones.",
		r.Target.Variable, strings.Join(shares, ", "))
}

// MissingRemark comments on how much of the dataset is missing
func MissingRemark(r *report.Report) string {
	if r.ColumnsWithMissing == 0 {
		return "No existen variables con presencia de valores NA."
	}
	worst := 0.0
	for _, m := range r.Missing {
		if m.PctMissing > worst {
			worst = m.PctMissing
		}
	}
	return fmt.Sprintf(
		"Existen %d variables con presencia de valores NA (a lo más %.2f%% de valores faltantes del total de observaciones); "+
			"dado este porcentaje se procede a hacer la imputación por media y moda dependiendo del tipo de variable "+
			"durante el proceso del entrenamiento del modelo.",
		r.ColumnsWithMissing, worst)
}

// ModelSections explains the L1-regularized logistic regression and keeps
// placeholders for training and results
func ModelSections() []Section {
	return []Section{
		{
			Title: "Modelo estadístico: Regresión Logística",
			Blocks: []Block{
				{Markdown: "En todo modelo de regresión, el objetivo es **optimizar una función objetivo** " +
					"para encontrar los parámetros que mejor explican los datos.\n\n" +
					"- En la **regresión lineal**, la función objetivo típica es minimizar la **suma de los residuos al cuadrado**."},
				{LaTeX: `\sum_{i=1}^{n} \left(Y_i - (\beta_0 + \beta_1 X_i)\right)^2`},
			},
			Figure: &Figure{
				File:    "maxresdefault.png",
				Caption: "Regresión lineal simple: línea de mejor ajuste minimizando la suma de residuos al cuadrado.",
			},
		},
		{
			Blocks: []Block{
				{Markdown: "- En la **regresión logística**, como la variable de interés es **binaria (0/1)**, " +
					"no tiene sentido usar residuos al cuadrado. En su lugar se utiliza la **log-verosimilitud**, " +
					"que mide qué tan probable es que el modelo genere los datos observados.\n\nLa forma del modelo logístico es:"},
				{LaTeX: `P(Y=1|X) = \frac{1}{1 + e^{-(\beta_0 + \beta_1 X_1 + \beta_2 X_2 + \dots + \beta_p X_p)}}`},
				{Markdown: "En este proyecto utilizamos la **regresión logística con regularización L1 (Lasso)**. " +
					"En este caso, la función objetivo incorpora una penalización adicional para controlar la complejidad del modelo:"},
				{LaTeX: `\mathcal{L}_{L1}(\beta) = - \sum_{i=1}^n \Big[ y_i \log(p_i) + (1-y_i)\log(1-p_i) \Big] \;+\; \lambda \sum_{j=1}^p |\beta_j|`},
				{Markdown: "donde"},
				{LaTeX: `\lambda`},
				{Markdown: "es conocido como un hiperparámetro que controla la fuerza de la penalización. " +
					"El efecto de esta penalización es que algunos coeficientes del modelo se reduzcan a **cero**, " +
					"lo cual equivale a una **selección automática de variables**.\n\n" +
					"Así, la regresión logística regularizada no solo estima probabilidades, " +
					"sino que también ayuda a identificar las características más relevantes en la predicción del churn."},
			},
		},
		{
			Title: "Entrenamiento del modelo",
			Figure: &Figure{
				File:    "entrenamiento.png",
				Caption: "Flujo de entrenamiento del modelo de regresión logística con regularización L1.",
			},
		},
		{
			Title: "Resultados",
		},
	}
}
