package tasks

const TaskPipeline = `Here's a Python function. What structural pattern does it follow? What would you change?

` + "```python" + `
def process(data, config):
    validated = validate(data, config.rules)
    transformed = transform(validated, config.mappings)
    enriched = enrich(transformed, fetch_external(config.sources))
    filtered = apply_filters(enriched, config.filters)
    grouped = group_by(filtered, config.group_key)
    aggregated = aggregate(grouped, config.agg_func)
    formatted = format_output(aggregated, config.output_format)
    return formatted
` + "```"

const TaskEventBus = `Analyze this EventBus implementation. What patterns and problems do you see?

` + "```python" + `
class EventBus:
    def __init__(self):
        self._handlers = {}
        self._middleware = []
        self._dead_letter = []

    def on(self, event_type, handler, priority=0):
        if event_type not in self._handlers:
            self._handlers[event_type] = []
        self._handlers[event_type].append((priority, handler))
        self._handlers[event_type].sort(key=lambda x: -x[0])

    def use(self, middleware_fn):
        self._middleware.append(middleware_fn)

    def emit(self, event_type, payload):
        context = {"type": event_type, "payload": payload, "cancelled": False}
        for mw in self._middleware:
            context = mw(context)
            if context.get("cancelled"):
                return context
        handlers = self._handlers.get(event_type, [])
        if not handlers:
            self._dead_letter.append(context)
            return context
        results = []
        for _, handler in handlers:
            try:
                results.append(handler(context))
            except Exception as e:
                context["error"] = e
                self._dead_letter.append(context)
        context["results"] = results
        return context
` + "```"

const TaskContrast = `Compare these two approaches to the same data analysis problem. Which is better, and why?

` + "```python" + `
# Approach 1: Linear Pipeline
def analyze_v1(data):
    cleaned = remove_nulls(data)
    normalized = scale_features(cleaned)
    features = extract_features(normalized)
    clustered = kmeans(features, k=5)
    labeled = assign_labels(clustered)
    return summarize(labeled)

# Approach 2: Dependency Graph
class AnalysisGraph:
    def __init__(self):
        self.nodes = {}
        self.edges = {}
        self.cache = {}

    def add_step(self, name, fn, depends_on=None):
        self.nodes[name] = fn
        self.edges[name] = depends_on or []

    def run(self, name, data):
        if name in self.cache:
            return self.cache[name]
        inputs = {dep: self.run(dep, data) for dep in self.edges[name]}
        result = self.nodes[name](data if not inputs else inputs)
        self.cache[name] = result
        return result
` + "```"

const MethodDiagnostic = `State the deepest structural problem in the artifact below as a single falsifiable claim. Defend the claim with evidence from the artifact itself, then name the mechanism that conceals the problem from a casual reader. End with what observation would refute your claim.`

const MethodGenerativeV2 = `Before analyzing the artifact below, derive the three analytical operations most useful for this specific input, and say why you chose them over the obvious alternatives. Apply each operation in turn. After each one, note what it revealed that the previous operations could not. Close by stating what your chosen operations were structurally unable to see.`

const MethodDoubleRecursion = `Analyze the artifact below. Then apply the same analysis to the analysis you just produced: what structural pattern does your own output follow, what does that pattern hide, and what would a second iteration change? Carry the recursion until it stops producing new structure, and state the invariant that survives every iteration.`

const MethodAcceptanceDesign = `Identify the deepest structural problem in the artifact below. Then design the most legitimate-looking improvement that would be accepted in review while deepening that problem. Derive the properties of the artifact that only become visible through this acceptance attempt, and state the conservation law they imply.`

var builtinTasks = map[string]Task{
	"task_A": {ID: "task_A", Prompt: TaskPipeline},
	"task_F": {ID: "task_F", Prompt: TaskEventBus},
	"task_G": {ID: "task_G", Prompt: TaskContrast},
}

var builtinMethods = map[string]Method{
	"L7_diagnostic":        {Name: "L7_diagnostic", Prompt: MethodDiagnostic},
	"L8_generative_v2":     {Name: "L8_generative_v2", Prompt: MethodGenerativeV2},
	"L10_double_recursion": {Name: "L10_double_recursion", Prompt: MethodDoubleRecursion},
	"L11_acceptance_design": {Name: "L11_acceptance_design", Prompt: MethodAcceptanceDesign},
}
