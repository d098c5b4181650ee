package comments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGroupIntoThreads(t *testing.T) {
	postID := primitive.NewObjectID()
	base := time.Now()

	first := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "first", CreatedAt: base}
	second := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "second", CreatedAt: base.Add(time.Minute)}
	replyA := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "reply a", ParentCommentID: &first.ID, CreatedAt: base.Add(2 * time.Minute)}
	replyB := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "reply b", ParentCommentID: &first.ID, CreatedAt: base.Add(3 * time.Minute)}

	views := groupIntoThreads([]Comment{first, second, replyA, replyB})

	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Content)
	assert.Equal(t, "second", views[1].Content)

	require.Len(t, views[0].Replies, 2)
	assert.Equal(t, "reply a", views[0].Replies[0].Content)
	assert.Equal(t, "reply b", views[0].Replies[1].Content)
	assert.Empty(t, views[1].Replies)
}

func TestGroupIntoThreadsDropsOrphanReplies(t *testing.T) {
	postID := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	top := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "top"}
	orphan := Comment{ID: primitive.NewObjectID(), PostID: postID, Content: "orphan", ParentCommentID: &missing}

	views := groupIntoThreads([]Comment{top, orphan})

	require.Len(t, views, 1)
	assert.Equal(t, "top", views[0].Content)
	assert.Empty(t, views[0].Replies)
}

func TestGroupIntoThreadsEmpty(t *testing.T) {
	views := groupIntoThreads(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
