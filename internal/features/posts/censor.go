package posts

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Redaction markers used for substring censoring inside free text.
const (
	contactHidden  = "[Contact Hidden]"
	emailHidden    = "[Email Hidden]"
	locationHidden = "Location hidden"

	verifyToSeeEmail = "Verify your account to see email"
	verifyToSeePhone = "Verify your account to see phone number"
)

var (
	phonePattern = regexp.MustCompile(`(\+?\d{1,4}[-.\s]?)?\(?\d{2,5}\)?[-.\s]?\d{2,5}[-.\s]?\d{2,9}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// LocationView is the serialized location of a PostView. A censored view
// keeps the full address in an unexported field for internal reference; it
// can never leak through JSON.
type LocationView struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	fullAddress string
}

// FullAddress returns the uncensored address for internal use.
func (l LocationView) FullAddress() string {
	if l.fullAddress != "" {
		return l.fullAddress
	}
	return l.Address
}

// PostView is the read model handed to API consumers. Full and censored
// posts share this one type, distinguished by IsCensored, so a censored view
// carries no raw data left to accidentally serialize.
type PostView struct {
	ID          primitive.ObjectID `json:"id"`
	UserID      primitive.ObjectID `json:"userId"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Category    string             `json:"category"`
	DateLost    *time.Time         `json:"dateLost,omitempty"`
	DateFound   *time.Time         `json:"dateFound,omitempty"`
	Location    LocationView       `json:"location"`
	Images      []string           `json:"images"`
	Tags        []string           `json:"tags"`
	Status      string             `json:"status"`
	Author      *Author            `json:"author,omitempty"`
	IsCensored  bool               `json:"isCensored"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewView builds the full, uncensored view of a post.
func NewView(p *Post, author *Author) PostView {
	return PostView{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Category:    p.Category,
		DateLost:    p.DateLost,
		DateFound:   p.DateFound,
		Location: LocationView{
			Address:     p.Location.Address,
			Coordinates: p.Location.Coordinates,
		},
		Images:    p.Images,
		Tags:      p.Tags,
		Status:    p.Status,
		Author:    author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Censor returns the view suitable for the given viewer. Verified viewers see
// the post untouched. For everyone else the address is coarsened, coordinates
// dropped, contact details redacted out of the description, and the author's
// email and phone replaced with verify prompts. The transform is pure and
// idempotent, so it is safe to apply per request on already-censored views.
func Censor(view PostView, viewerVerified bool) PostView {
	if viewerVerified {
		return view
	}

	full := view.Location.FullAddress()
	view.Location = LocationView{
		Address:     coarsenAddress(full),
		fullAddress: full,
	}

	// Markers contain no digits or @, so re-censoring leaves them alone.
	view.Description = emailPattern.ReplaceAllString(view.Description, emailHidden)
	view.Description = phonePattern.ReplaceAllString(view.Description, contactHidden)

	if view.Author != nil {
		author := *view.Author
		if author.Email != "" {
			author.Email = verifyToSeeEmail
		}
		if author.Phone != "" {
			author.Phone = verifyToSeePhone
		}
		view.Author = &author
	}

	view.IsCensored = true
	return view
}

// coarsenAddress reduces an address to a vague prefix. With two or more
// comma segments the first two survive; a single segment of at least three
// words keeps the first three; shorter addresses pass through unchanged.
func coarsenAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return locationHidden
	}

	if strings.Contains(trimmed, ",") {
		segments := strings.Split(trimmed, ",")
		if len(segments) >= 2 {
			first := strings.TrimSpace(segments[0])
			second := strings.TrimSpace(segments[1])
			return first + ", " + second + "..."
		}
	}

	words := strings.Fields(trimmed)
	if len(words) >= 3 {
		return strings.Join(words[:3], " ") + "..."
	}
	return trimmed
}
