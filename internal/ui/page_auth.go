package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func loginPage(errMsg, notice string, csrf Node) Node {
	return HTML(
		Lang("en"),
		pageHead("Sign in"),
		Body(Class("login-body"),
			Main(Class("login-wrap"),
				H1(Text("OmniCalc")),
				P(Text("Sign in to your account.")),
				If(notice != "", P(Class("notice"), Text(notice))),
				If(errMsg != "", P(Class("error"), Text(errMsg))),
				Form(
					Method("post"),
					Action("/login"),
					Class("login-form"),
					csrf,
					Label(For("email"), Text("Email")),
					Input(ID("email"), Type("email"), Name("email"), Required()),
					Label(For("password"), Text("Password")),
					Input(ID("password"), Type("password"), Name("password"), Required()),
					Button(Type("submit"), Class("btn btn-primary"), Text("Sign In")),
				),
				P(Class("alt"),
					Text("No account yet? "),
					A(Href("/register"), Text("Register")),
				),
			),
		),
	)
}

// registerPage renders the registration form. The administrator option is
// offered only while no admin account has been claimed.
func registerPage(errMsg string, adminAvailable bool, csrf Node) Node {
	return HTML(
		Lang("en"),
		pageHead("Register"),
		Body(Class("login-body"),
			Main(Class("login-wrap"),
				H1(Text("OmniCalc")),
				P(Text("Create a new account.")),
				If(errMsg != "", P(Class("error"), Text(errMsg))),
				Form(
					Method("post"),
					Action("/register"),
					Class("login-form"),
					csrf,
					Label(For("fullName"), Text("Full name")),
					Input(ID("fullName"), Type("text"), Name("fullName"), Required()),
					Label(For("email"), Text("Email")),
					Input(ID("email"), Type("email"), Name("email"), Required()),
					Label(For("password"), Text("Password")),
					Input(ID("password"), Type("password"), Name("password"), Required(), MinLength("6")),
					If(adminAvailable, Div(Class("checkbox"),
						Input(ID("admin"), Type("checkbox"), Name("admin"), Value("1")),
						Label(For("admin"), Text("Create as administrator")),
					)),
					Button(Type("submit"), Class("btn btn-primary"), Text("Register")),
				),
				P(Class("alt"),
					Text("Already have an account? "),
					A(Href("/login"), Text("Sign in")),
				),
			),
		),
	)
}
