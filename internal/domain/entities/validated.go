package entities

// ValidatedUser wraps a User that passed validation. Repositories accept
// only validated entities so an unchecked construction cannot reach the
// database.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}

func (vu *ValidatedUser) UpdateProfile(username, email, aboutMe string) error {
	return vu.User.UpdateProfile(username, email, aboutMe)
}

type ValidatedPost struct {
	*Post
}

func NewValidatedPost(post *Post) (*ValidatedPost, error) {
	if err := post.validate(); err != nil {
		return nil, err
	}
	return &ValidatedPost{Post: post}, nil
}

func (vp *ValidatedPost) GetPost() *Post {
	return vp.Post
}
