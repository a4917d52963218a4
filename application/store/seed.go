package store

import "inkwell/domain/core/entities"

// SampleUsers returns the built-in identities available in mock-data mode.
func SampleUsers() []entities.User {
	return []entities.User{
		{
			ID:     "7e3f1d1c-8f0a-4b6e-9a6e-4d2c5b8a1f01",
			Email:  "johndoe@example.com",
			Name:   "John Doe",
			Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			ID:     "b4a9c2e7-51d3-4f08-8c17-9e6f0a3d2b02",
			Email:  "janedoe@example.com",
			Name:   "Jane Doe",
			Avatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
	}
}

// SamplePosts returns the built-in collection used when durable storage
// holds no post document yet. Newest first, matching insertion order of
// the live collection.
func SamplePosts() []entities.Post {
	users := SampleUsers()

	older, _ := entities.NewPost(
		"Writing Maintainable Go Services",
		"Patterns that keep a Go codebase approachable as it grows: small interfaces, explicit wiring, and tests that describe behavior.",
		`# Writing Maintainable Go Services

Most Go services start small and stay readable. The trouble begins when the
second and third contributor arrive.

## Accept interfaces, return structs

Constructors should return concrete types and depend on the narrowest
interface they actually call:

`+"```go"+`
func NewContentStore(storage Storage) *ContentStore {
    return &ContentStore{storage: storage}
}
`+"```"+`

## Wire dependencies explicitly

A composition root that builds every component by hand reads like a table of
contents for the whole program. Resist the ambient singleton.

## Test behavior, not wiring

Table tests against the public surface survive refactors; tests that reach
into private state do not.
`,
		"https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		users[1],
	)

	newer, _ := entities.NewPost(
		"Markdown for Technical Writing",
		"Why plain Markdown remains the most durable format for long-form technical content, and the few extensions worth adopting.",
		`# Markdown for Technical Writing

Markdown wins because the source stays legible without a renderer. A post
written ten years ago still reads fine in a terminal.

## What to keep

- Headings, emphasis, links, and fenced code blocks cover nearly everything
- Tables, sparingly
- Images with meaningful alt text

## What to avoid

Inline HTML ties your content to one renderer and one sanitizer. If a
construct needs HTML, it probably belongs in the layout, not the document.
`,
		"https://images.pexels.com/photos/261662/pexels-photo-261662.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		users[0],
	)

	return []entities.Post{newer, older}
}
