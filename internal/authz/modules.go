package authz

// Action is a button or command a module screen offers
type Action struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Permission Permission `json:"-"`
}

// Entry is one sidebar item of a module
type Entry struct {
	Key        string     `json:"key"`
	Title      string     `json:"title"`
	Path       string     `json:"path"`
	Permission Permission `json:"-"`
	Actions    []Action   `json:"actions,omitempty"`
}

// Module is a back-office area shown in the module switcher
type Module struct {
	Key        string     `json:"key"`
	Title      string     `json:"title"`
	BasePath   string     `json:"base_path"`
	Icon       string     `json:"icon"`
	Permission Permission `json:"-"`
	Entries    []Entry    `json:"entries"`
}

func entry(key, title, path, perm string, actions ...Action) Entry {
	return Entry{Key: key, Title: title, Path: path, Permission: MustPermission(perm), Actions: actions}
}

func action(key, label, perm string) Action {
	return Action{Key: key, Label: label, Permission: MustPermission(perm)}
}

var catalog = []Module{
	{
		Key: "hr", Title: "Recursos Humanos", BasePath: "/hr", Icon: "users",
		Permission: MustPermission("hr.employees:read"),
		Entries: []Entry{
			entry("employees", "Servidores", "/hr/employees", "hr.employees:read",
				action("create", "Novo servidor", "hr.employees:write"),
				action("export", "Exportar", "hr.employees:read")),
			entry("assignments", "Lotação", "/hr/assignments", "hr.assignments:read",
				action("assign", "Nova lotação", "hr.assignments:write")),
			entry("units", "Unidades", "/hr/units", "hr.units:read",
				action("create", "Nova unidade", "hr.units:write")),
			entry("positions", "Cargos", "/hr/positions", "hr.positions:read",
				action("create", "Novo cargo", "hr.positions:write")),
		},
	},
	{
		Key: "payroll", Title: "Folha de Pagamento", BasePath: "/payroll", Icon: "wallet",
		Permission: MustPermission("payroll.runs:read"),
		Entries: []Entry{
			entry("runs", "Competências", "/payroll/runs", "payroll.runs:read",
				action("open", "Abrir competência", "payroll.runs:write"),
				action("import", "Importar lançamentos", "payroll.runs:write"),
				action("close", "Fechar competência", "payroll.runs:approve")),
			entry("summary", "Resumo anual", "/payroll/summary", "payroll.runs:read"),
		},
	},
	{
		Key: "procurement", Title: "Licitações", BasePath: "/procurement", Icon: "gavel",
		Permission: MustPermission("procurement.cases:read"),
		Entries: []Entry{
			entry("cases", "Processos", "/procurement/cases", "procurement.cases:read",
				action("create", "Novo processo", "procurement.cases:write"),
				action("complete", "Concluir processo", "procurement.cases:approve")),
		},
	},
	{
		Key: "governance", Title: "Governança", BasePath: "/governance", Icon: "landmark",
		Permission: MustPermission("governance.portarias:read"),
		Entries: []Entry{
			entry("meetings", "Reuniões", "/governance/meetings", "governance.meetings:read",
				action("create", "Nova reunião", "governance.meetings:write")),
			entry("portarias", "Portarias", "/governance/portarias", "governance.portarias:read",
				action("create", "Nova portaria", "governance.portarias:write"),
				action("publish", "Publicar", "governance.portarias:approve")),
		},
	},
	{
		Key: "communications", Title: "Comunicação", BasePath: "/communications", Icon: "megaphone",
		Permission: MustPermission("communications.news:read"),
		Entries: []Entry{
			entry("news", "Notícias", "/communications/news", "communications.news:read",
				action("create", "Nova notícia", "communications.news:write"),
				action("publish", "Publicar", "communications.news:approve")),
			entry("galleries", "Galerias", "/communications/galleries", "communications.galleries:read",
				action("create", "Nova galeria", "communications.galleries:write")),
			entry("pages", "Páginas", "/communications/pages", "communications.pages:read",
				action("create", "Nova página", "communications.pages:write")),
		},
	},
	{
		Key: "transparency", Title: "Transparência", BasePath: "/transparency", Icon: "eye",
		Permission: MustPermission("transparency.reports:read"),
		Entries: []Entry{
			entry("payroll", "Folha", "/transparency/payroll", "transparency.reports:read"),
			entry("procurement", "Licitações", "/transparency/procurement", "transparency.reports:read"),
			entry("portarias", "Portarias", "/transparency/portarias", "transparency.reports:read"),
		},
	},
	{
		Key: "assets", Title: "Patrimônio", BasePath: "/assets", Icon: "package",
		Permission: MustPermission("assets.items:read"),
		Entries: []Entry{
			entry("items", "Bens", "/assets/items", "assets.items:read",
				action("create", "Novo bem", "assets.items:write"),
				action("transfer", "Transferir", "assets.items:write"),
				action("write_off", "Baixar", "assets.items:approve")),
			entry("summary", "Resumo", "/assets/summary", "assets.items:read"),
		},
	},
	{
		Key: "credentialing", Title: "Credenciamento", BasePath: "/credentialing", Icon: "id-card",
		Permission: MustPermission("credentialing.schools:read"),
		Entries: []Entry{
			entry("preregistrations", "Pré-cadastros", "/credentialing/pre-registrations", "credentialing.preregistrations:read",
				action("approve", "Aprovar", "credentialing.preregistrations:approve")),
			entry("schools", "Escolas", "/credentialing/schools", "credentialing.schools:read",
				action("import", "Importar planilha", "credentialing.schools:write")),
			entry("federations", "Federações", "/credentialing/federations", "credentialing.federations:read",
				action("create", "Nova federação", "credentialing.federations:write")),
			entry("managers", "Gestores", "/credentialing/managers", "credentialing.managers:read",
				action("suspend", "Suspender", "credentialing.managers:approve")),
		},
	},
	{
		Key: "admin", Title: "Administração", BasePath: "/admin", Icon: "settings",
		Permission: MustPermission("admin.users:admin"),
		Entries: []Entry{
			entry("users", "Usuários", "/admin/users", "admin.users:admin"),
			entry("directory", "Diretório", "/admin/directory", "admin.directory:read"),
		},
	},
}

// Catalog returns every module regardless of role
func Catalog() []Module {
	return catalog
}

// VisibleModules returns the modules role may open, each trimmed to the
// entries and actions role holds
func (a *Authorizer) VisibleModules(role string) []Module {
	var out []Module
	for _, m := range catalog {
		if !a.Can(role, m.Permission) {
			continue
		}
		visible := m
		visible.Entries = nil
		for _, e := range m.Entries {
			if !a.Can(role, e.Permission) {
				continue
			}
			ve := e
			ve.Actions = nil
			for _, act := range e.Actions {
				if a.Can(role, act.Permission) {
					ve.Actions = append(ve.Actions, act)
				}
			}
			visible.Entries = append(visible.Entries, ve)
		}
		if len(visible.Entries) > 0 {
			out = append(out, visible)
		}
	}
	return out
}

// CanSeeModule reports whether role may open the module with key
func (a *Authorizer) CanSeeModule(role, key string) bool {
	for _, m := range catalog {
		if m.Key == key {
			return a.Can(role, m.Permission)
		}
	}
	return false
}
