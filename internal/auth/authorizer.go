package auth

// Decision is the outcome of an ownership check. Deny is a value, not an
// error; callers turn it into a rejection response and must not apply any
// part of the mutation afterwards.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// AuthorizeOwner permits a mutation only when the requester is the
// resource's recorded owner. This is the rule for every mutation except
// comment removal.
func AuthorizeOwner(requester, owner string) Decision {
	if requester != "" && requester == owner {
		return Allow
	}
	return Deny
}

// AuthorizeCommentRemoval permits removal when the requester owns the post
// or authored the comment. This disjunctive rule applies to comment
// removal only.
func AuthorizeCommentRemoval(requester, postOwner, commentAuthor string) Decision {
	if requester == "" {
		return Deny
	}
	if requester == postOwner || requester == commentAuthor {
		return Allow
	}
	return Deny
}
