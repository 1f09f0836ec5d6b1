package field

import (
	"context"
	"encoding/json"
)

// Client is the REST collaborator boundary. Implementations own the
// HTTP transport; this package only defines the data shapes exchanged.
// Raw field values must be passed through Resolve or Flatten, since the
// transport makes no guarantees about their shape.
type Client interface {
	// Description fetches the raw description value of an issue.
	Description(ctx context.Context, issueKey string) (json.RawMessage, error)
	// Comments fetches the raw body values of an issue's comments.
	Comments(ctx context.Context, issueKey string) ([]json.RawMessage, error)
	// PostComment submits an encoded comment body.
	PostComment(ctx context.Context, issueKey string, body Body) error
}
