package ticket

import (
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// newAttachments builds one attachment row per URL. The media kind and mime
// type are inferred from the URL's file extension; URLs without a known
// extension are recorded as images, which is what mobile uploads produce.
// Rows are stamped a microsecond apart so listings keep submission order.
func newAttachments(ticketID, uploadedBy string, urls []string, now time.Time) []domain.TicketAttachment {
	if len(urls) == 0 {
		return nil
	}

	result := make([]domain.TicketAttachment, 0, len(urls))
	for i, raw := range urls {
		raw = strings.TrimSpace(raw)
		kind, mimeType := classify(raw)
		result = append(result, domain.TicketAttachment{
			ID:         uuid.NewString(),
			TicketID:   ticketID,
			UploadedBy: uploadedBy,
			URL:        raw,
			Kind:       kind,
			MimeType:   mimeType,
			CreatedAt:  now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return result
}

// The builtin mime table has no video types, so common phone formats are listed here.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".3gp":  "video/3gpp",
}

func classify(raw string) (domain.AttachmentKind, *string) {
	u, err := url.Parse(raw)
	if err != nil {
		return domain.AttachmentKindImage, nil
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return domain.AttachmentKindImage, nil
	}

	if t, ok := videoTypes[ext]; ok {
		return domain.AttachmentKindVideo, &t
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return domain.AttachmentKindImage, nil
	}
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = base
	}

	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return domain.AttachmentKindImage, &mimeType
	case strings.HasPrefix(mimeType, "video/"):
		return domain.AttachmentKindVideo, &mimeType
	default:
		return domain.AttachmentKindDocument, &mimeType
	}
}
