package waitlist

import (
	"context"
	"fmt"
	"time"

	"github.com/jomei/notionapi"
)

// Property names and the fixed status value of the waitlist database.
const (
	propName         = "이름"
	propEmail        = "이메일"
	propRegisteredAt = "등록일시"
	propStatus       = "상태"
	statusWaiting    = "대기중"
)

// NotionRegistrar appends signups as pages of a Notion database.
type NotionRegistrar struct {
	client     *notionapi.Client
	databaseID notionapi.DatabaseID
	now        func() time.Time
}

// NewNotionRegistrar creates a registrar for the given integration token and
// database.
func NewNotionRegistrar(token, databaseID string) *NotionRegistrar {
	return &NotionRegistrar{
		client:     notionapi.NewClient(notionapi.Token(token)),
		databaseID: notionapi.DatabaseID(databaseID),
		now:        time.Now,
	}
}

// Register creates one database row with the signup and a waiting status.
func (r *NotionRegistrar) Register(ctx context.Context, s Submission) error {
	registeredAt := notionapi.Date(r.now())

	_, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.databaseID,
		},
		Properties: notionapi.Properties{
			propName: notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: s.Name}},
				},
			},
			propEmail: notionapi.EmailProperty{
				Email: s.Email,
			},
			propRegisteredAt: notionapi.DateProperty{
				Date: &notionapi.DateObject{Start: &registeredAt},
			},
			propStatus: notionapi.SelectProperty{
				Select: notionapi.Option{Name: statusWaiting},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create waitlist page: %w", err)
	}
	return nil
}
