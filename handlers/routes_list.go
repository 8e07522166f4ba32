package handlers

import (
	"log"
	"net/http"
	"strings"

	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/models"
)

// ListRoutes returns the selectable route names. It has exactly one success
// path: live registry rows when usable, otherwise the fixed default list.
// Read errors degrade to the defaults too; callers never see an error.
func ListRoutes(w http.ResponseWriter, r *http.Request) {
	var rows []models.Route
	var names []string
	if err := config.DB.Order("position ASC").Find(&rows).Error; err != nil {
		logError("ルート一覧取得", err, "")
	} else {
		for _, row := range rows {
			names = append(names, row.Name)
		}
	}

	routes := UsableRouteNames(names)
	log.Printf("%d個のルートを返します", len(routes))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"routes": routes,
	})
}

// UsableRouteNames filters blank and whitespace-only entries, falling back
// to the default list when nothing usable remains. The result is never
// empty. Duplicates are kept; the registry is not deduplicated.
func UsableRouteNames(names []string) []string {
	usable := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			usable = append(usable, name)
		}
	}
	if len(usable) == 0 {
		return append([]string(nil), models.DefaultRouteNames...)
	}
	return usable
}
