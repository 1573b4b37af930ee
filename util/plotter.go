package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"coffee-concierge/models"
)

// PlotNearbyPOIs renders an HTML map of a shop and its nearby points of
// interest, one scatter series per POI type plus one for the shop itself.
func PlotNearbyPOIs(shopName string, shopLat, shopLng float64, pois []models.NearbyPOI, outputPath string) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Nearby %s", shopName),
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	// One series per POI type so parks, bookstores and landmarks render
	// as distinct groups.
	byType := map[string][]opts.GeoData{}
	for _, p := range pois {
		byType[p.POI.Type] = append(byType[p.POI.Type], opts.GeoData{
			Name:  fmt.Sprintf("%s (%s)", p.POI.Name, p.DistanceFm),
			Value: []float64{p.POI.Lng, p.POI.Lat},
		})
	}
	for poiType, points := range byType {
		geo.AddSeries(poiType, types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	geo.AddSeries("shop", types.ChartScatter,
		[]opts.GeoData{{Name: shopName, Value: []float64{shopLng, shopLat}}},
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render nearby map: %w", err)
	}
	return nil
}
