package posts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func samplePost() *Post {
	now := time.Now()
	return &Post{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		Title:       "Lost black wallet",
		Description: "Lost near the station, call 017-1234567 or a@b.com if found",
		Type:        TypeLost,
		Category:    "other",
		DateLost:    &now,
		Location: Location{
			Address:     "Sylhet, Shahjalal Road, House 12",
			Coordinates: &Coordinates{Lat: 24.8949, Lng: 91.8687},
		},
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCensorVerifiedViewerSeesEverything(t *testing.T) {
	post := samplePost()
	view := Censor(NewView(post, nil), true)

	assert.False(t, view.IsCensored)
	assert.Equal(t, "Sylhet, Shahjalal Road, House 12", view.Location.Address)
	require.NotNil(t, view.Location.Coordinates)
	assert.Contains(t, view.Description, "017-1234567")
	assert.Contains(t, view.Description, "a@b.com")
}

func TestCensorCoarsensAddress(t *testing.T) {
	post := samplePost()
	view := Censor(NewView(post, nil), false)

	assert.True(t, view.IsCensored)
	assert.Equal(t, "Sylhet, Shahjalal Road...", view.Location.Address)
	assert.Nil(t, view.Location.Coordinates)
	assert.Equal(t, "Sylhet, Shahjalal Road, House 12", view.Location.FullAddress())
}

func TestCoarsenAddress(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"two plus segments", "Sylhet, Shahjalal Road, House 12", "Sylhet, Shahjalal Road..."},
		{"exactly two segments", "Dhaka, Gulshan", "Dhaka, Gulshan..."},
		{"single segment many words", "House 12 Shahjalal Road Sylhet", "House 12 Shahjalal..."},
		{"single short token", "CentralPark", "CentralPark"},
		{"two words", "Central Park", "Central Park"},
		{"empty", "", "Location hidden"},
		{"whitespace only", "   ", "Location hidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coarsenAddress(tc.in))
		})
	}
}

func TestCensorRedactsContactDetails(t *testing.T) {
	post := samplePost()
	post.Description = "call 017-1234567 or a@b.com"

	view := Censor(NewView(post, nil), false)

	assert.Equal(t, "call [Contact Hidden] or [Email Hidden]", view.Description)
}

func TestCensorRedactsAuthorContacts(t *testing.T) {
	post := samplePost()
	author := &Author{
		ID:       post.UserID,
		Username: "rakib",
		Email:    "rakib@example.com",
		Phone:    "+8801712345678",
	}

	view := Censor(NewView(post, author), false)

	require.NotNil(t, view.Author)
	assert.Equal(t, "Verify your account to see email", view.Author.Email)
	assert.Equal(t, "Verify your account to see phone number", view.Author.Phone)
	// the source author is untouched
	assert.Equal(t, "rakib@example.com", author.Email)
}

func TestCensorIsIdempotent(t *testing.T) {
	post := samplePost()
	author := &Author{ID: post.UserID, Username: "rakib", Email: "rakib@example.com", Phone: "01712345678"}

	once := Censor(NewView(post, author), false)
	twice := Censor(once, false)

	assert.Equal(t, once, twice)
}

func TestCensoredViewNeverSerializesFullAddress(t *testing.T) {
	post := samplePost()
	view := Censor(NewView(post, nil), false)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "House 12")
	assert.NotContains(t, string(raw), "24.8949")
	assert.Contains(t, string(raw), `"isCensored":true`)
}
