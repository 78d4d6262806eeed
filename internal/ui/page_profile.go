package ui

import (
	"omnicalc/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func profilePage(session *domain.Session, categories []domain.CalculatorCategory, profile *domain.Profile, errMsg, notice string, csrf Node) Node {
	role := "User"
	if profile.IsAdmin {
		role = "Administrator"
	}
	return appPage("Your Profile", "", session, categories,
		If(errMsg != "", P(Class("error"), Text(errMsg))),
		If(notice != "", P(Class("notice"), Text(notice))),
		Div(Class("card"),
			H2(Text("Account")),
			Table(Class("result-table"), TBody(
				Tr(Th(Text("Email")), Td(Text(profile.Email))),
				Tr(Th(Text("Role")), Td(Text(role))),
				Tr(Th(Text("Member since")), Td(Text(dateOnly(profile.CreatedAt)))),
			)),
		),
		Div(Class("card"),
			H2(Text("Display name")),
			Form(Method("post"), Action("/profile"), Class("calc-form"),
				csrf,
				Label(For("fullName"), Text("Full name")),
				Input(ID("fullName"), Type("text"), Name("fullName"), Value(profile.FullName), Required()),
				Div(Style("margin-top:16px"),
					Button(Type("submit"), Class("btn btn-primary"), Text("Save")),
				),
			),
		),
	)
}
