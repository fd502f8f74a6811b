package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-api/internal/router"

	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{BcryptCost: bcrypt.MinCost, RandSeed: 42}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Usuario
	userID := createResource(t, ts.URL, "/api/users", map[string]any{
		"first_name": "Ana",
		"last_name":  "López",
		"email":      "ana.lopez@email.com",
		"password":   "secreta",
	})

	// 2) Email duplicado => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/users", map[string]any{
			"first_name": "Otra",
			"last_name":  "Ana",
			"email":      "ANA.LOPEZ@email.com",
			"password":   "x",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate email, got %d body=%s", st, string(body))
		}
		assertError(t, body, "Email ya existe")
	}

	// 3) Mascota
	petID := createResource(t, ts.URL, "/api/pets", map[string]any{
		"name":    "Milo",
		"species": "perro",
		"breed":   "Beagle",
		"age":     2.5,
		"color":   "tricolor",
		"size":    "mediano",
		"weight":  12.3,
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var pet map[string]any
		_ = json.Unmarshal(body, &pet)
		if pet["ageDescription"] != "Joven (1-3 años)" || pet["adoptionStatus"] != "disponible" {
			t.Fatalf("unexpected pet defaults: %v", pet)
		}
	}

	// 4) Adopción con usuario y mascota populados
	adoptionID := createResource(t, ts.URL, "/api/adoptions", map[string]any{
		"user":  userID,
		"pet":   petID,
		"notes": "primera visita",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/api/adoptions/"+adoptionID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get adoption, got %d body=%s", st, string(body))
		}
		var a struct {
			Status string `json:"status"`
			User   struct {
				Email string `json:"email"`
			} `json:"user"`
			Pet struct {
				Name string `json:"name"`
			} `json:"pet"`
		}
		_ = json.Unmarshal(body, &a)
		if a.Status != "pending" || a.User.Email != "ana.lopez@email.com" || a.Pet.Name != "Milo" {
			t.Fatalf("unexpected adoption: %s", string(body))
		}
	}

	// 5) Mismo par => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/adoptions", map[string]any{"user": userID, "pet": petID})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate adoption, got %d body=%s", st, string(body))
		}
	}

	// 6) Usuario inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/adoptions", map[string]any{"user": "nope", "pet": petID})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown user, got %d", st)
		}
	}

	// 7) Completar => adoptionDate
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/adoptions/"+adoptionID, map[string]any{"status": "completed"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update adoption, got %d body=%s", st, string(body))
		}
		var a map[string]any
		_ = json.Unmarshal(body, &a)
		if a["adoptionDate"] == nil {
			t.Fatalf("expected adoptionDate after completing: %s", string(body))
		}
	}

	// 8) Listados por usuario y mascota
	for _, path := range []string{"/api/adoptions/user/" + userID, "/api/adoptions/pet/" + petID} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d", path, st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 adoption in %s, got %d", path, len(items))
		}
	}

	// 9) Borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/adoptions/"+adoptionID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete adoption, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/adoptions/"+adoptionID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreatePet_ValidatesRequiredFields(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/pets", map[string]any{
		"name":    "Sin especie",
		"breed":   "Mestizo",
		"age":     1,
		"color":   "negro",
		"size":    "pequeño",
		"weight":  4,
		"species": "dragón",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid species, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/pets", map[string]any{"name": "Solo nombre"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing fields, got %d", st)
	}
}

func TestHTTP_UpdatePet_OwnerMustExist(t *testing.T) {
	ts := newTestServer(t)

	userID := createResource(t, ts.URL, "/api/users", map[string]any{
		"first_name": "Bruno",
		"last_name":  "Díaz",
		"email":      "bruno.diaz@email.com",
		"password":   "secreta",
	})
	petID := createResource(t, ts.URL, "/api/pets", map[string]any{
		"name":    "Nala",
		"species": "gato",
		"breed":   "Siamés",
		"age":     3,
		"color":   "crema",
		"size":    "pequeño",
		"weight":  4.2,
	})

	// dueño inexistente => 400 y no se persiste
	st, body := doReq(t, ts.URL, "PUT", "/api/pets/"+petID, map[string]any{"owner": "no-such-user"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown owner, got %d body=%s", st, string(body))
	}
	assertError(t, body, `invalid input: owner "no-such-user" no existe`)

	st, body = doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d", st)
	}
	var pet map[string]any
	_ = json.Unmarshal(body, &pet)
	if _, ok := pet["owner"]; ok {
		t.Fatalf("rejected owner must not be stored: %v", pet["owner"])
	}

	// dueño existente => populado
	st, body = doReq(t, ts.URL, "PUT", "/api/pets/"+petID, map[string]any{"owner": userID})
	if st != http.StatusOK {
		t.Fatalf("expected 200 valid owner, got %d body=%s", st, string(body))
	}
	pet = map[string]any{}
	_ = json.Unmarshal(body, &pet)
	owner, _ := pet["owner"].(map[string]any)
	if owner["id"] != userID || owner["email"] != "bruno.diaz@email.com" {
		t.Fatalf("expected populated owner, got %v", pet["owner"])
	}

	// string vacío limpia el dueño
	st, body = doReq(t, ts.URL, "PUT", "/api/pets/"+petID, map[string]any{"owner": ""})
	if st != http.StatusOK {
		t.Fatalf("expected 200 clearing owner, got %d body=%s", st, string(body))
	}
	pet = map[string]any{}
	_ = json.Unmarshal(body, &pet)
	if _, ok := pet["owner"]; ok {
		t.Fatalf("expected owner cleared, got %v", pet["owner"])
	}
}

func TestHTTP_SeedThenStats(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/mocks/seed", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 seed, got %d body=%s", st, string(body))
	}
	var res struct {
		InsertedUsers     int  `json:"insertedUsers"`
		InsertedPets      int  `json:"insertedPets"`
		InsertedAdoptions int  `json:"insertedAdoptions"`
		Fallback          bool `json:"fallback"`
	}
	_ = json.Unmarshal(body, &res)
	if res.Fallback || res.InsertedUsers != 15 || res.InsertedPets != 25 || res.InsertedAdoptions != 12 {
		t.Fatalf("unexpected seed result: %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/stats/dashboard", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d", st)
	}
	var d struct {
		Summary struct {
			TotalPets      int `json:"totalPets"`
			TotalUsers     int `json:"totalUsers"`
			TotalAdoptions int `json:"totalAdoptions"`
		} `json:"summary"`
	}
	_ = json.Unmarshal(body, &d)
	if d.Summary.TotalPets != 25 || d.Summary.TotalUsers != 15 || d.Summary.TotalAdoptions != 12 {
		t.Fatalf("unexpected dashboard summary: %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/pets/count/species", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 species count, got %d body=%s", st, string(body))
	}

	// La búsqueda devuelve dueños populados
	st, body = doReq(t, ts.URL, "GET", "/api/stats/pets/search?age_min=0&age_max=30", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
	}
	var search struct {
		Count int `json:"count"`
		Pets  []struct {
			Owner *struct {
				Email string `json:"email"`
			} `json:"owner"`
		} `json:"pets"`
	}
	_ = json.Unmarshal(body, &search)
	if search.Count != 25 {
		t.Fatalf("expected 25 pets in search, got %d", search.Count)
	}
	withOwner := 0
	for _, p := range search.Pets {
		if p.Owner != nil {
			if p.Owner.Email == "" {
				t.Fatalf("owner not populated: %s", string(body))
			}
			withOwner++
		}
	}
	if withOwner != 15 {
		t.Fatalf("expected 15 owned pets, got %d", withOwner)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/stats/pets/search?age_min=abc", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid age_min, got %d", st)
	}
}

func TestHTTP_Mocks(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/api/mocks/mockingpets?count=3", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 mockingpets, got %d", st)
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 mock pets, got %d", len(items))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/mocks/mockingusers", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 mockingusers, got %d", st)
	}
	items = nil
	_ = json.Unmarshal(body, &items)
	if len(items) != 50 {
		t.Fatalf("expected default of 50 mock users, got %d", len(items))
	}
	if _, leaked := items[0]["password"]; leaked {
		t.Fatalf("password must not be serialized")
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": -1, "pets": 2})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 negative users, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": 2, "pets": 3})
	if st != http.StatusOK {
		t.Fatalf("expected 200 generateData, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/users", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list users, got %d", st)
	}
	items = nil
	_ = json.Unmarshal(body, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 persisted users, got %d", len(items))
	}
}

func TestHTTP_HealthAndDocs(t *testing.T) {
	ts := newTestServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/api-docs/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	if !bytes.Contains(body, []byte(`"/adoptions"`)) {
		t.Fatalf("expected adoptions path in swagger doc")
	}
}

func createResource(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func assertError(t *testing.T, body []byte, want string) {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Error != want {
		t.Fatalf("expected error %q, got %q", want, resp.Error)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
