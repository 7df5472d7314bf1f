package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jellymann/geos/pkg/edgegraph"
	"github.com/jellymann/geos/pkg/logger"
	"github.com/jellymann/geos/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

// generateGridPaths lays out roughly n vertices on a grid and returns the
// row and column polylines connecting them.
func generateGridPaths(n int) [][]edgegraph.Vertex {
	if n < 4 {
		n = 4
	}
	rows := 2
	for rows*rows < n {
		rows++
	}
	cols := rows

	const step = 50.0
	paths := make([][]edgegraph.Vertex, 0, rows+cols)

	for i := 0; i < rows; i++ {
		row := make([]edgegraph.Vertex, 0, cols)
		for j := 0; j < cols; j++ {
			row = append(row, edgegraph.Vertex{X: float64(j) * step, Y: float64(i) * step})
		}
		paths = append(paths, row)
	}
	for j := 0; j < cols; j++ {
		col := make([]edgegraph.Vertex, 0, rows)
		for i := 0; i < rows; i++ {
			col = append(col, edgegraph.Vertex{X: float64(j) * step, Y: float64(i) * step})
		}
		paths = append(paths, col)
	}

	return paths
}

// generateRandomWalk returns a single lattice walk of n points. Steps snap
// to a grid so the walk revisits segments now and then, which exercises the
// graph's deduplication.
func generateRandomWalk(n int) [][]edgegraph.Vertex {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	const step = 50.0
	x, y := 0, 0
	path := make([]edgegraph.Vertex, 0, n)
	path = append(path, edgegraph.Vertex{X: 0, Y: 0})

	for i := 1; i < n; i++ {
		switch rng.Intn(4) {
		case 0:
			x++
		case 1:
			x--
		case 2:
			y++
		case 3:
			y--
		}
		path = append(path, edgegraph.Vertex{X: float64(x) * step, Y: float64(y) * step})
	}

	return [][]edgegraph.Vertex{path}
}

// parsePaths reads one polyline per line, points separated by commas,
// coordinates by whitespace: "0 0, 1 0, 1 1, 0 0".
func parsePaths(text string) ([][]edgegraph.Vertex, error) {
	var paths [][]edgegraph.Vertex

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var path []edgegraph.Vertex
		for _, point := range strings.Split(line, ",") {
			fields := strings.Fields(point)
			if len(fields) != 2 {
				return nil, fmt.Errorf("bad point %q: want two coordinates", strings.TrimSpace(point))
			}
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("bad x in %q: %w", point, err)
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("bad y in %q: %w", point, err)
			}
			path = append(path, edgegraph.Vertex{X: x, Y: y})
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Half-edge planar graph",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// graphToEcharts renders the graph's vertices as scatter points and every
// undirected segment once as a line overlay.
func graphToEcharts(g *edgegraph.EdgeGraph) *charts.Scatter {
	scatter := charts.NewScatter()

	reps := g.VertexEdges()

	// Stable point order so repeated builds render the same series.
	verts := make([]edgegraph.Vertex, 0, len(reps))
	for _, e := range reps {
		verts = append(verts, e.Orig())
	}
	sort.Sort(edgegraph.NewVerticesByXY(verts))

	points := make([]opts.ScatterData, 0, len(verts))
	for _, v := range verts {
		points = append(points, opts.ScatterData{
			Value: []float64{v.X, v.Y},
		})
	}

	prepareScatter(scatter)

	scatter.AddSeries("Vertices", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, rep := range reps {
		e := rep
		for {
			// Each pair shows up in two rings; draw it from the lesser end.
			if e.Orig().Compare(e.Dest()) < 0 {
				line := charts.NewLine()
				line.SetGlobalOptions(
					charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
					charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
				)

				line.AddSeries("Edges", []opts.LineData{
					{Value: []float64{e.Orig().X, e.Orig().Y}},
					{Value: []float64{e.Dest().X, e.Dest().Y}},
				}).SetSeriesOptions(
					charts.WithLineStyleOpts(opts.LineStyle{
						Width: 2,
					}),
				)

				scatter.Overlap(line)
			}
			e = e.ONext()
			if e == rep {
				break
			}
		}
	}

	return scatter
}

func graphHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var paths [][]edgegraph.Vertex

		log := logger.New(logger.ParseLevel(cfg.LogLevel))
		defer log.ClearLogs()

		if r.Method == http.MethodPost {
			r.ParseForm()
			count, _ := strconv.Atoi(r.FormValue("count"))
			if count < 2 {
				count = 16
			}

			switch r.FormValue("preset") {
			case "grid":
				paths = generateGridPaths(count)
			case "random":
				paths = generateRandomWalk(count)
			default:
				var err error
				paths, err = parsePaths(r.FormValue("paths"))
				if err != nil {
					log.Error("[app] input rejected", zap.Error(err))
					paths = nil
				}
			}
		}
		if paths == nil {
			// default demo: a triangle
			paths = [][]edgegraph.Vertex{{
				{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 0},
			}}
		}

		builder := edgegraph.NewBuilderFor(edgegraph.NewWithBlockSize(cfg.BlockSize), log)
		for _, path := range paths {
			builder.AddPath(path)
		}

		g := builder.Graph()
		log.Info("[app] graph built",
			zap.Int("vertices", g.VertexCount()),
			zap.Int("edges", g.EdgeCount()))

		scatter := graphToEcharts(g)

		fmt.Fprintln(w, static.Part1)

		if err := scatter.Render(w); err != nil {
			fmt.Println("render error:", err)
		}

		fmt.Fprintln(w, static.Part2)

		for _, entry := range log.Logs {
			fmt.Fprintln(w, entry)
		}

		fmt.Fprintln(w, static.Part3)
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Println("config error:", err)
		return
	}

	http.HandleFunc("/", graphHandler(cfg))
	fmt.Println("listening on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
