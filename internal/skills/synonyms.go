package skills

// defaultSynonyms maps each canonical skill name to its known aliases.
// Keys and values are matched case-insensitively; the table is flattened
// into bidirectional lookup maps when a Normalizer is built.
var defaultSynonyms = map[string][]string{
	"go":               {"golang", "go lang"},
	"python":           {"python3", "py"},
	"java":             {"java se", "java ee", "j2ee"},
	"javascript":       {"js", "ecmascript", "es6"},
	"typescript":       {"ts"},
	"c++":              {"cpp", "cplusplus"},
	"c#":               {"csharp", "c sharp", ".net c#"},
	"ruby on rails":    {"rails", "ror"},
	"kubernetes":       {"k8s", "kube"},
	"docker":           {"docker containers", "containerization"},
	"terraform":        {"tf", "hashicorp terraform"},
	"aws":              {"amazon web services"},
	"gcp":              {"google cloud", "google cloud platform"},
	"azure":            {"microsoft azure"},
	"postgresql":       {"postgres", "psql", "postgre"},
	"mysql":            {"my sql"},
	"mongodb":          {"mongo"},
	"redis":            {"redis cache"},
	"elasticsearch":    {"elastic search", "es"},
	"kafka":            {"apache kafka"},
	"rabbitmq":         {"rabbit mq"},
	"spark":            {"apache spark", "pyspark"},
	"react":            {"react.js", "reactjs"},
	"vue":              {"vue.js", "vuejs"},
	"angular":          {"angularjs", "angular.js"},
	"node.js":          {"node", "nodejs"},
	"next.js":          {"nextjs"},
	"spring":           {"spring boot", "springboot", "spring framework"},
	"django":           {"django rest framework", "drf"},
	"flask":            {"python flask"},
	"fastapi":          {"fast api"},
	"grpc":             {"grpc-go"},
	"graphql":          {"graph ql"},
	"rest":             {"rest api", "restful", "restful api"},
	"ci/cd":            {"cicd", "ci cd", "continuous integration", "continuous delivery"},
	"machine learning": {"ml"},
	"deep learning":    {"dl"},
	"nlp":              {"natural language processing"},
	"pytorch":          {"torch"},
	"tensorflow":       {"tf2", "tensor flow"},
	"scikit-learn":     {"sklearn", "scikit learn"},
	"pandas":           {"python pandas"},
	"sql":              {"structured query language"},
	"nosql":            {"no-sql", "no sql"},
	"linux":            {"gnu/linux", "unix"},
	"git":              {"git scm"},
	"html":             {"html5"},
	"css":              {"css3"},
	"microservices":    {"micro services", "microservice architecture"},
}
