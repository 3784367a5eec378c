package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestListChapters(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/chapters", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var got []chapterSummary
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 chapters, got %d", len(got))
	}
	if got[0].Number != 1 || got[1].Number != 2 {
		t.Errorf("Expected chapters in order, got %d then %d", got[0].Number, got[1].Number)
	}
	if !got[0].HasQuiz {
		t.Error("Expected chapter 1 to report a quiz")
	}
	if got[1].HasQuiz {
		t.Error("Expected chapter 2 to report no quiz")
	}
}

func TestChapterDetailStripsAnswerKeys(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/chapters/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	quiz := string(raw["quiz"])
	if strings.Contains(quiz, "correctOptionId") || strings.Contains(quiz, "correctOrder") {
		t.Errorf("Detail response leaked answer keys: %s", quiz)
	}
}

func TestChapterNotFound(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	for _, path := range []string{"/api/chapters/99", "/api/chapters/abc"} {
		resp := doJSON(t, http.MethodGet, srv.URL+path, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestChapterContent(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/chapters/1/content", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Blocks []struct {
			Kind string `json:"kind"`
			Code *struct {
				Lines []struct {
					Number int    `json:"number"`
					Text   string `json:"text"`
				} `json:"lines"`
			} `json:"code"`
		} `json:"blocks"`
		Generation int `json:"generation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(result.Blocks))
	}
	if result.Blocks[0].Kind != "narrative" || result.Blocks[1].Kind != "code" {
		t.Errorf("Expected narrative then code, got %q then %q", result.Blocks[0].Kind, result.Blocks[1].Kind)
	}
	if result.Blocks[1].Code == nil || len(result.Blocks[1].Code.Lines) != 1 {
		t.Errorf("Expected one code line, got %+v", result.Blocks[1].Code)
	}
}

func TestChapterTutorial(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/chapters/1/tutorial", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got []struct {
		Title  string `json:"title"`
		Blocks []struct {
			Kind  string `json:"kind"`
			Label string `json:"label"`
		} `json:"blocks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Title != "First chain" {
		t.Fatalf("Expected one tutorial section, got %+v", got)
	}
	if len(got[0].Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(got[0].Blocks))
	}
	if got[0].Blocks[1].Kind != "checkpoint" || got[0].Blocks[1].Label != "CHECKPOINT" {
		t.Errorf("Expected checkpoint block, got %+v", got[0].Blocks[1])
	}

	// Chapters without a tutorial return an empty list.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/chapters/2/tutorial", "")
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty tutorial list, got %d sections", len(got))
	}
}

func TestContentResetIsIdempotentWhenHealthy(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/chapters/1/content/reset", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}
		var got map[string]int
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if got["generation"] != 0 {
			t.Errorf("Expected generation 0 on healthy reset, got %d", got["generation"])
		}
	}
}

func TestBreadcrumbEndpoint(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/breadcrumb?path=/chapter/2", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var crumb map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&crumb); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if crumb["title"] != "Ch 2: Routing" {
		t.Errorf("Expected full title, got %v", crumb["title"])
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/breadcrumb?path=/chapter/2&compact=true", "")
	if err := json.NewDecoder(resp.Body).Decode(&crumb); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if crumb["title"] != "Ch 2" {
		t.Errorf("Expected compact title, got %v", crumb["title"])
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/breadcrumb?path=/about", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204 for non-chapter path, got %d", resp.StatusCode)
	}
}

func TestIconEndpoint(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/icons/link", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Expected svg content type, got %q", ct)
	}

	// Unknown keys still return an icon.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/icons/nonsense", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 for unknown icon, got %d", resp.StatusCode)
	}
}

func TestConceptsEndpoint(t *testing.T) {
	srv := newTestServer(t, newFakeRepo())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/concepts", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var got map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// The fixture chapters introduce no concepts; the index is empty but present.
	if got == nil {
		t.Error("Expected an empty map, got null")
	}
}
