package api

type signupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signinInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type projectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Work        string `json:"work"`
	ProfileID   uint   `json:"profileId"`
}

type githubProjectInput struct {
	GitHubURL string `json:"githubUrl"`
	ProfileID uint   `json:"profileId"`
}

// authUser is the public slice of an account returned by signup/signin.
type authUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
