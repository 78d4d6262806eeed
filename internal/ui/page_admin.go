package ui

import (
	"strconv"

	"omnicalc/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func adminPage(session *domain.Session, categories []domain.CalculatorCategory, accounts []domain.Account) Node {
	rows := make([]Node, 0, len(accounts))
	for _, a := range accounts {
		lastSignIn := "never"
		if a.LastSignInAt != nil {
			lastSignIn = dateOnly(*a.LastSignInAt)
		}
		badges := []Node{}
		if a.IsAdmin() {
			badges = append(badges, Span(Class("badge badge-admin"), Text("admin")))
		}
		if a.Disabled {
			badges = append(badges, Span(Class("badge badge-disabled"), Text("disabled")))
		}
		if len(badges) == 0 {
			badges = append(badges, Span(Class("badge"), Text("active")))
		}
		rows = append(rows, Tr(
			Td(Text(a.Email)),
			Td(Text(a.DisplayName)),
			Td(Code(Text(a.ID))),
			Td(Text(dateOnly(a.CreatedAt))),
			Td(Text(lastSignIn)),
			Td(Group(badges)),
		))
	}

	return appPage("User Management", "", session, categories,
		Div(Class("card"),
			H2(Text("Registered users ("+strconv.Itoa(len(accounts))+")")),
			Table(Class("user-table"),
				THead(Tr(
					Th(Text("Email")),
					Th(Text("Name")),
					Th(Text("UID")),
					Th(Text("Created")),
					Th(Text("Last sign-in")),
					Th(Text("Status")),
				)),
				TBody(Group(rows)),
			),
		),
	)
}
