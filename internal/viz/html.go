package viz

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mverbeek/transgraph/internal/graph"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout string // "force", "circle", or "grid"
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{Layout: "force"}
}

// GenerateHTML generates a self-contained HTML file for the graph visualization.
func GenerateHTML(g *graph.Graph, opts HTMLOptions) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}

	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}

	if g.IsEmpty() {
		return generateEmptyHTML(), nil
	}

	graphJSON, err := ToCytoscapeJSON(g)
	if err != nil {
		return "", err
	}

	data := templateData{
		GraphJSON: template.JS(graphJSON),
		Layout:    layoutToCytoscape(opts.Layout),
		Directed:  g.Directed,
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "force", "circle", "grid":
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be force, circle, or grid", layout)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	GraphJSON template.JS
	Layout    string
	Directed  bool
}

// layoutToCytoscape converts user-friendly layout names to Cytoscape.js layout algorithm names.
func layoutToCytoscape(layout string) string {
	switch layout {
	case "circle":
		return "circle"
	case "grid":
		return "grid"
	default:
		return "cose"
	}
}

// generateEmptyHTML returns HTML for an empty graph state.
func generateEmptyHTML() string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Translation Graph - Empty</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state {
      text-align: center;
      color: #666;
    }
    .empty-state h2 {
      margin-bottom: 0.5em;
      color: #333;
    }
    .empty-state code {
      background: #e0e0e0;
      padding: 2px 6px;
      border-radius: 3px;
    }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No graph data</h2>
    <p>Your repository has no records to build from.</p>
    <p>Add records using <code>tg add</code> or <code>tg import</code></p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Translation Graph</title>
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  <style>
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #cy {
      width: 100%;
      height: 100vh;
      background: white;
    }
    #tooltip {
      position: absolute;
      display: none;
      background: white;
      border: 1px solid #ccc;
      border-radius: 4px;
      padding: 8px 12px;
      box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      max-width: 300px;
      font-size: 13px;
      z-index: 1000;
      pointer-events: none;
    }
    #tooltip .type {
      font-size: 10px;
      text-transform: uppercase;
      color: #888;
      margin-bottom: 4px;
    }
    #tooltip .label {
      font-weight: bold;
      margin-bottom: 4px;
    }
    #tooltip .detail {
      color: #555;
      margin: 2px 0;
    }
  </style>
</head>
<body>
  <div id="cy"></div>
  <div id="tooltip"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const layout = "{{.Layout}}";
      const arrowShape = {{if .Directed}}'triangle'{{else}}'none'{{end}};

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          // Agent nodes - blue circles
          {
            selector: 'node[group="authorName"]',
            style: {
              'background-color': '#4A90D9',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(pageRank, 0, 0.2, 25, 60)',
              'height': 'mapData(pageRank, 0, 0.2, 25, 60)'
            }
          },
          {
            selector: 'node[group="translatorName"]',
            style: {
              'background-color': '#5CB85C',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(pageRank, 0, 0.2, 25, 60)',
              'height': 'mapData(pageRank, 0, 0.2, 25, 60)'
            }
          },
          // Publisher nodes - orange diamonds
          {
            selector: 'node[group="publisher"]',
            style: {
              'background-color': '#E8923A',
              'shape': 'diamond',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(pageRank, 0, 0.2, 25, 60)',
              'height': 'mapData(pageRank, 0, 0.2, 25, 60)'
            }
          },
          // Place nodes - purple hexagons
          {
            selector: 'node[group="city"]',
            style: {
              'background-color': '#9B59B6',
              'shape': 'hexagon',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'mapData(pageRank, 0, 0.2, 25, 60)',
              'height': 'mapData(pageRank, 0, 0.2, 25, 60)'
            }
          },
          // Language nodes - small gray squares
          {
            selector: 'node[group="sourceLanguage"], node[group="targetLanguage"]',
            style: {
              'background-color': '#7F8C8D',
              'shape': 'rectangle',
              'label': 'data(label)',
              'color': '#555',
              'font-size': '9px',
              'text-valign': 'bottom',
              'text-margin-y': '3px',
              'width': '22px',
              'height': '22px'
            }
          },
          // Edge styling by relation type
          {
            selector: 'edge[type="TRANSLATION"]',
            style: {
              'line-color': '#337AB7',
              'target-arrow-color': '#337AB7',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'edge[type="PUBLICATION"]',
            style: {
              'line-color': '#E8923A',
              'target-arrow-color': '#E8923A',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'edge[type="COLLABORATION"]',
            style: {
              'line-color': '#2ECC71',
              'target-arrow-color': '#2ECC71',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'edge[type="GEOGRAPHIC"]',
            style: {
              'line-color': '#9B59B6',
              'target-arrow-color': '#9B59B6',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'edge[type="LINGUISTIC"]',
            style: {
              'line-color': '#1ABC9C',
              'target-arrow-color': '#1ABC9C',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'edge',
            style: {
              'line-color': '#95A5A6',
              'target-arrow-color': '#95A5A6',
              'target-arrow-shape': arrowShape,
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 10, 1, 6)'
            }
          },
          {
            selector: 'node.highlighted',
            style: {
              'border-width': 3,
              'border-color': '#ff6b6b'
            }
          },
          {
            selector: 'node.dimmed',
            style: {
              'opacity': 0.3
            }
          },
          {
            selector: 'edge.dimmed',
            style: {
              'opacity': 0.2
            }
          }
        ],
        layout: {
          name: layout,
          animate: false,
          nodeRepulsion: 8000,
          idealEdgeLength: 100,
          edgeElasticity: 100
        }
      });

      const tooltip = document.getElementById('tooltip');

      function showTooltip(evt, content) {
        tooltip.innerHTML = content;
        tooltip.style.display = 'block';
        const pos = evt.renderedPosition || evt.position;
        tooltip.style.left = (pos.x + 15) + 'px';
        tooltip.style.top = (pos.y + 15) + 'px';
      }

      function hideTooltip() {
        tooltip.style.display = 'none';
      }

      function escapeHtml(str) {
        if (!str) return '';
        return str.replace(/&/g, '&amp;')
                  .replace(/</g, '&lt;')
                  .replace(/>/g, '&gt;')
                  .replace(/"/g, '&quot;');
      }

      function getNodeTooltip(node) {
        const data = node.data();
        let html = '<div class="type">' + escapeHtml(data.group) + '</div>';
        html += '<div class="label">' + escapeHtml(data.label) + '</div>';
        html += '<div class="detail">Degree: ' + data.degree + '</div>';
        html += '<div class="detail">Closeness: ' + data.closeness.toFixed(4) + '</div>';
        html += '<div class="detail">Betweenness: ' + data.betweenness.toFixed(4) + '</div>';
        html += '<div class="detail">PageRank: ' + data.pageRank.toFixed(4) + '</div>';
        return html;
      }

      function getEdgeTooltip(edge) {
        const data = edge.data();
        let html = '<div class="type">' + data.type + '</div>';
        html += '<div class="label">' + escapeHtml(data.source) + ' — ' + escapeHtml(data.target) + '</div>';
        html += '<div class="detail">Weight: ' + data.weight + '</div>';
        return html;
      }

      cy.on('mouseover', 'node', function(evt) {
        showTooltip(evt, getNodeTooltip(evt.target));
      });

      cy.on('mouseout', 'node', function() {
        hideTooltip();
      });

      cy.on('mouseover', 'edge', function(evt) {
        showTooltip(evt, getEdgeTooltip(evt.target));
      });

      cy.on('mouseout', 'edge', function() {
        hideTooltip();
      });

      cy.on('tap', 'node', function(evt) {
        const node = evt.target;
        cy.elements().removeClass('highlighted dimmed');
        const neighborhood = node.neighborhood().add(node);
        neighborhood.addClass('highlighted');
        cy.elements().not(neighborhood).addClass('dimmed');
      });

      cy.on('tap', function(evt) {
        if (evt.target === cy) {
          cy.elements().removeClass('highlighted dimmed');
        }
      });
    })();
  </script>
</body>
</html>`
