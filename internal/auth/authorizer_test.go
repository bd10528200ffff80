package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	cases := []struct {
		name      string
		requester string
		owner     string
		want      Decision
	}{
		{"owner", "u1", "u1", Allow},
		{"not owner", "u2", "u1", Deny},
		{"empty requester", "", "u1", Deny},
		{"both empty", "", "", Deny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AuthorizeOwner(tc.requester, tc.owner))
		})
	}
}

func TestAuthorizeCommentRemoval(t *testing.T) {
	cases := []struct {
		name          string
		requester     string
		postOwner     string
		commentAuthor string
		want          Decision
	}{
		{"post owner removes another author's comment", "owner", "owner", "author", Allow},
		{"author removes own comment on another's post", "author", "owner", "author", Allow},
		{"requester is both", "u1", "u1", "u1", Allow},
		{"third party", "u3", "owner", "author", Deny},
		{"empty requester", "", "owner", "author", Deny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AuthorizeCommentRemoval(tc.requester, tc.postOwner, tc.commentAuthor))
		})
	}
}
