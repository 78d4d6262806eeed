package ui

import (
	"omnicalc/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | OmniCalc")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		Link(Rel("stylesheet"), Href("/static/app.css")),
	)
}

// appPage is the catalog shell: category sidebar, session box, content area.
// categories drive the nav; activeSlug highlights the current category.
func appPage(title, activeSlug string, session *domain.Session, categories []domain.CalculatorCategory, body ...Node) Node {
	nav := make([]Node, 0, len(categories)+1)
	homeClass := "app-nav-link"
	if activeSlug == "" {
		homeClass += " active"
	}
	nav = append(nav, A(Href("/"), Class(homeClass), Text("All Calculators")))
	for _, cat := range categories {
		className := "app-nav-link"
		if cat.Slug == activeSlug {
			className += " active"
		}
		nav = append(nav, A(Href("/categories/"+cat.Slug), Class(className), Text(cat.Name)))
	}

	var sessionBox Node
	if session != nil {
		sessionBox = Div(Class("session-box"),
			P(Text("Signed in as "+session.Email)),
			A(Href("/profile"), Class("btn"), Text("Profile")),
			If(session.IsAdmin, A(Href("/admin"), Class("btn"), Text("Admin"))),
			Form(Method("post"), Action("/logout"), Style("display:inline;margin-left:8px"),
				Button(Type("submit"), Class("btn"), Text("Sign out")),
			),
		)
	} else {
		sessionBox = Div(Class("session-box"),
			A(Href("/login"), Class("btn"), Text("Sign in")),
			A(Href("/register"), Class("btn btn-primary"), Text("Register")),
		)
	}

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(Class("app-shell"),
				Aside(Class("app-sidebar"),
					Div(Class("brand"),
						Strong(Text("OmniCalc")),
						P(Text("Every calculator you need")),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(Class("app-main"),
					Div(Class("topbar"),
						H1(Class("page-title"), Text(title)),
						sessionBox,
					),
					Div(Class("content"), Group(body)),
				),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(Class("login-body"),
			Main(Class("login-wrap"),
				H1(Text(title)),
				P(Class("error"), Text(message)),
				P(Class("alt"), A(Href("/"), Text("Back to the catalog"))),
			),
		),
	)
}
