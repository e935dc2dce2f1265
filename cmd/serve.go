package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/constants"
	"github.com/swaralipi/swaralipi/detect"
	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/parse"
	"github.com/swaralipi/swaralipi/rhythm"
	"github.com/swaralipi/swaralipi/spatial"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parse API",
	Long:  `Serves the parse API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// HandleParse is the GET /api/parse handler. Exported so e2e tests
// can drive it through httptest.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")

	input := r.URL.Query().Get("input")
	json.NewEncoder(w).Encode(buildParseResponse(input))
}

func buildParseResponse(input string) model.ParseResponse {
	var res model.ParseResponse
	// detect.Scores returns tie-break order; the API promises best
	// verdict first.
	scores := detect.Scores(input)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	res.DetectedSystems = scores

	doc, err := parse.ParseDocument(input)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	parsed, err := json.Marshal(doc)
	if err != nil {
		res.Error = "Could not marshal document: " + err.Error()
		return res
	}
	res.ParsedDocument = parsed

	spatial.BindDocument(doc)
	rhythm.AnalyzeDocument(doc)

	analyzed, err := json.Marshal(doc)
	if err != nil {
		res.Error = "Could not marshal analyzed document: " + err.Error()
		return res
	}
	res.RhythmAnalyzedDoc = analyzed

	rt := parse.CheckRoundtrip(doc)
	res.Roundtrip = &rt
	res.SyntaxTokens = doc.SyntaxSpans()
	res.Success = true
	return res
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/parse", HandleParse).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
