package ui

import (
	"omnicalc/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func categoryCard(cat domain.CalculatorCategory, calculators []domain.Calculator) Node {
	links := make([]Node, 0, len(calculators))
	for _, c := range calculators {
		links = append(links, Li(A(Href("/calculators/"+c.Slug), Text(c.Name))))
	}
	return Div(Class("card"),
		H2(A(Href("/categories/"+cat.Slug), Text(cat.Name))),
		P(Class("muted"), Text(cat.Description)),
		Ul(Group(links)),
	)
}

func homePage(session *domain.Session, categories []domain.CalculatorCategory, byCategory map[string][]domain.Calculator) Node {
	cards := make([]Node, 0, len(categories))
	for _, cat := range categories {
		cards = append(cards, categoryCard(cat, byCategory[cat.Slug]))
	}
	return appPage("All Calculators", "", session, categories,
		Div(Class("card-grid"), Group(cards)),
	)
}

func categoryPage(session *domain.Session, categories []domain.CalculatorCategory, cat domain.CalculatorCategory, calculators []domain.Calculator) Node {
	cards := make([]Node, 0, len(calculators))
	for _, c := range calculators {
		cards = append(cards, Div(Class("card"),
			H2(A(Href("/calculators/"+c.Slug), Text(c.Name))),
			P(Class("muted"), Text(c.Description)),
		))
	}
	return appPage(cat.Name, cat.Slug, session, categories,
		P(Class("muted"), Text(cat.Description)),
		Div(Class("card-grid"), Group(cards)),
	)
}

// calculatorPage renders the input form and, after a submission, the result
// rows, optional schedule table, and the advisory next-step tip.
func calculatorPage(
	session *domain.Session,
	categories []domain.CalculatorCategory,
	c *domain.Calculator,
	form calcForm,
	submitted map[string]string,
	result *calcResult,
	computeErr string,
	tip string,
) Node {
	fields := make([]Node, 0, len(form.Fields)*2)
	for _, f := range form.Fields {
		value := submitted[f.Name]
		if value == "" {
			value = f.Default
		}
		switch f.Kind {
		case fieldSelect:
			opts := make([]Node, 0, len(f.Options))
			for _, opt := range f.Options {
				optNodes := []Node{Value(opt.Value), Text(opt.Label)}
				if opt.Value == value {
					optNodes = append(optNodes, Selected())
				}
				opts = append(opts, Option(optNodes...))
			}
			fields = append(fields,
				Label(For(f.Name), Text(f.Label)),
				Select(ID(f.Name), Name(f.Name), Group(opts)),
			)
		case fieldCheckbox:
			boxNodes := []Node{ID(f.Name), Type("checkbox"), Name(f.Name), Value("1")}
			if value == "1" || value == "on" {
				boxNodes = append(boxNodes, Checked())
			}
			fields = append(fields, Div(Class("checkbox"),
				Input(boxNodes...),
				Label(For(f.Name), Text(f.Label)),
			))
		case fieldDate:
			fields = append(fields,
				Label(For(f.Name), Text(f.Label)),
				Input(ID(f.Name), Type("date"), Name(f.Name), Value(value)),
			)
		default:
			inputNodes := []Node{ID(f.Name), Type("number"), Name(f.Name), Value(value)}
			if f.Kind == fieldNumber {
				inputNodes = append(inputNodes, Step("any"))
			}
			fields = append(fields, Label(For(f.Name), Text(f.Label)), Input(inputNodes...))
		}
	}

	body := []Node{
		P(Class("muted"), Text(c.Description)),
		Div(Class("card"),
			Form(Method("get"), Action("/calculators/"+c.Slug), Class("calc-form"),
				Group(fields),
				Input(Type("hidden"), Name("calculate"), Value("1")),
				Div(Style("margin-top:16px"),
					Button(Type("submit"), Class("btn btn-primary"), Text("Calculate")),
				),
			),
		),
	}

	if computeErr != "" {
		body = append(body, P(Class("error"), Text(computeErr)))
	}
	if result != nil {
		rows := make([]Node, 0, len(result.Rows))
		for _, row := range result.Rows {
			rows = append(rows, Tr(Th(Text(row.Label)), Td(Text(row.Value))))
		}
		body = append(body, Div(Class("card"),
			H2(Text("Result")),
			Table(Class("result-table"), TBody(Group(rows))),
		))
		if result.Table != nil {
			headers := make([]Node, 0, len(result.Table.Headers))
			for _, hd := range result.Table.Headers {
				headers = append(headers, Th(Text(hd)))
			}
			tableRows := make([]Node, 0, len(result.Table.Rows))
			for _, tr := range result.Table.Rows {
				cells := make([]Node, 0, len(tr))
				for _, cell := range tr {
					cells = append(cells, Td(Text(cell)))
				}
				tableRows = append(tableRows, Tr(Group(cells)))
			}
			body = append(body, Div(Class("card"),
				H2(Text("Schedule")),
				Table(Class("result-table"),
					THead(Tr(Group(headers))),
					TBody(Group(tableRows)),
				),
			))
		}
		if tip != "" {
			body = append(body, Div(Class("tip"), Text(tip)))
		}
	}

	return appPage(c.Name, c.CategorySlug, session, categories, body...)
}
