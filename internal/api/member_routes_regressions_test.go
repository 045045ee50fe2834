package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/terraincognita07/salasilah/internal/models"
)

func TestAddMemberCreatesRecordAndRedirects(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	form := url.Values{
		"name":       {"Chandra"},
		"birth_date": {"1988-02-01"},
	}
	response := postTestForm(t, app, "/add_member", form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	var member models.FamilyMember
	if err := database.Where("name = ?", "Chandra").First(&member).Error; err != nil {
		t.Fatalf("expected member to be persisted: %v", err)
	}
	if member.BirthDate != "1988-02-01" {
		t.Fatalf("expected birth date to persist, got %q", member.BirthDate)
	}
	if member.FatherID != nil || member.MotherID != nil {
		t.Fatalf("expected no parents, got %v and %v", member.FatherID, member.MotherID)
	}
}

func TestAddMemberWithParentsStoresBothReferences(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	father := createTestMember(t, database, "Aminah", nil, nil)
	mother := createTestMember(t, database, "Siti", nil, nil)

	form := url.Values{
		"name":      {"Chandra"},
		"father_id": {formatID(father.ID)},
		"mother_id": {formatID(mother.ID)},
	}
	response := postTestForm(t, app, "/add_member", form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	var member models.FamilyMember
	if err := database.Where("name = ?", "Chandra").First(&member).Error; err != nil {
		t.Fatalf("expected member to be persisted: %v", err)
	}
	if member.FatherID == nil || *member.FatherID != father.ID {
		t.Fatalf("expected father %d, got %v", father.ID, member.FatherID)
	}
	if member.MotherID == nil || *member.MotherID != mother.ID {
		t.Fatalf("expected mother %d, got %v", mother.ID, member.MotherID)
	}
}

func TestAddMemberMissingNameShowsFlashError(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	form := url.Values{"name": {"   "}}
	response := postTestForm(t, app, "/add_member", form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/add_member" {
		t.Fatalf("expected redirect to /add_member, got %q", location)
	}

	flashValue := responseCookieValue(response.Cookies(), flashCookieName)
	if flashValue == "" {
		t.Fatal("expected flash cookie after validation failure")
	}

	page := getTestPage(t, app, "/add_member", authCookie+"; "+flashCookieName+"="+flashValue, http.StatusOK)
	if !strings.Contains(page, "Name is required.") {
		t.Fatal("expected name-required message on add member page")
	}
}

func TestAddMemberRejectsUnknownParent(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	form := url.Values{
		"name":      {"Chandra"},
		"father_id": {"999"},
	}
	response := postTestForm(t, app, "/add_member", form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/add_member" {
		t.Fatalf("expected redirect to /add_member, got %q", location)
	}

	var count int64
	if err := database.Model(&models.FamilyMember{}).Count(&count).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no member rows, got %d", count)
	}
}

func TestEditMemberUnknownIDReturnsNotFound(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	getTestPage(t, app, "/edit_member/999", authCookie, http.StatusNotFound)

	form := url.Values{"name": {"Tiada"}}
	response := postTestForm(t, app, "/edit_member/999", form, authCookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 on update of missing member, got %d", response.StatusCode)
	}
}

func TestEditMemberParentOptionsExcludeSelf(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	createTestMember(t, database, "Aminah", nil, nil)
	createTestMember(t, database, "Siti", nil, nil)
	edited := createTestMember(t, database, "Chandra", nil, nil)

	page := getTestPage(t, app, "/edit_member/"+formatID(edited.ID), authCookie, http.StatusOK)
	if !strings.Contains(page, `<option value="1"`) || !strings.Contains(page, `<option value="2"`) {
		t.Fatal("expected other members in parent options")
	}
	if strings.Contains(page, `<option value="`+formatID(edited.ID)+`"`) {
		t.Fatal("edited member must not be offered as its own parent")
	}
}

func TestEditMemberRejectsSelfParentViaForm(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	member := createTestMember(t, database, "Chandra", nil, nil)

	form := url.Values{
		"name":      {"Chandra"},
		"father_id": {formatID(member.ID)},
	}
	response := postTestForm(t, app, "/edit_member/"+formatID(member.ID), form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/edit_member/"+formatID(member.ID) {
		t.Fatalf("expected redirect back to edit form, got %q", location)
	}

	var reloaded models.FamilyMember
	if err := database.First(&reloaded, member.ID).Error; err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if reloaded.FatherID != nil {
		t.Fatalf("expected father to stay unset, got %v", reloaded.FatherID)
	}
}

func TestEditMemberUpdatesAndRedirects(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "aminah", "rahsia123")
	authCookie := loginAndExtractAuthCookie(t, app, "aminah", "rahsia123")

	father := createTestMember(t, database, "Aminah", nil, nil)
	child := createTestMember(t, database, "Chandra", nil, nil)

	form := url.Values{
		"name":       {"Chandra bin Aminah"},
		"birth_date": {"1988-02-01"},
		"father_id":  {formatID(father.ID)},
	}
	response := postTestForm(t, app, "/edit_member/"+formatID(child.ID), form, authCookie)
	defer response.Body.Close()

	if location := redirectLocation(t, response); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	var reloaded models.FamilyMember
	if err := database.First(&reloaded, child.ID).Error; err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if reloaded.Name != "Chandra bin Aminah" || reloaded.BirthDate != "1988-02-01" {
		t.Fatalf("unexpected updated member: %+v", reloaded)
	}
	if reloaded.FatherID == nil || *reloaded.FatherID != father.ID {
		t.Fatalf("expected father %d, got %v", father.ID, reloaded.FatherID)
	}
	if reloaded.MotherID != nil {
		t.Fatalf("expected mother cleared, got %v", reloaded.MotherID)
	}
}
