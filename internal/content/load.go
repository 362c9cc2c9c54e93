package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

type rawTable struct {
	Start   string      `yaml:"start"`
	Items   []rawItem   `yaml:"items"`
	Recipes []rawRecipe `yaml:"recipes"`
	Loot    []rawGrant  `yaml:"loot"`
	Zones   []rawZone   `yaml:"zones"`
}

type rawItem struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Damage      int    `yaml:"damage"`
	Effect      string `yaml:"effect"`
	Description string `yaml:"description"`
}

type rawRecipe struct {
	Result      string `yaml:"result"`
	Ingredients []struct {
		Item  string `yaml:"item"`
		Count int    `yaml:"count"`
	} `yaml:"ingredients"`
}

type rawGrant struct {
	Item    string `yaml:"item"`
	Message string `yaml:"message"`
}

type rawPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type rawZone struct {
	Name         string   `yaml:"name"`
	DrainsSanity bool     `yaml:"drains_sanity"`
	Spawn        rawPoint `yaml:"spawn"`
	Layout       []string `yaml:"layout"`
	Creatures    []struct {
		Kind string `yaml:"kind"`
		X    int    `yaml:"x"`
		Y    int    `yaml:"y"`
	} `yaml:"creatures"`
	Interactables []struct {
		Kind string `yaml:"kind"`
		X    int    `yaml:"x"`
		Y    int    `yaml:"y"`
		Text string `yaml:"text"`
	} `yaml:"interactables"`
	Story      string    `yaml:"story"`
	StoryGrant *rawGrant `yaml:"story_grant"`
	Door       *struct {
		Key     string `yaml:"key"`
		Success string `yaml:"success"`
		Failure string `yaml:"failure"`
	} `yaml:"door"`
	Endgame *struct {
		Success string `yaml:"success"`
		Failure string `yaml:"failure"`
	} `yaml:"endgame"`
}

// Load decodes and validates a YAML content table. Unknown fields are
// rejected so that typos surface at startup.
func Load(data []byte) (*Table, error) {
	var raw rawTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	t := &Table{start: raw.Start, byName: make(map[string]*entity.Item)}
	for _, ri := range raw.Items {
		it, err := buildItem(ri)
		if err != nil {
			return nil, err
		}
		key := itemKey(it.Name)
		if _, dup := t.byName[key]; dup {
			return nil, fmt.Errorf("item %q defined twice: %w", it.Name, ErrBadContent)
		}
		t.byName[key] = it
		t.items = append(t.items, it)
	}

	for i, rr := range raw.Recipes {
		r, err := t.buildRecipe(rr)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		t.recipes = append(t.recipes, r)
	}

	for _, rl := range raw.Loot {
		g, err := t.buildGrant(rl)
		if err != nil {
			return nil, fmt.Errorf("loot: %w", err)
		}
		t.loot = append(t.loot, Loot(*g))
	}

	if len(raw.Zones) == 0 {
		return nil, fmt.Errorf("no zones: %w", ErrBadContent)
	}
	for _, rz := range raw.Zones {
		zs, err := t.buildZone(rz)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", rz.Name, err)
		}
		// Build once so that layout errors surface at load time.
		if _, err := zs.Build(); err != nil {
			return nil, err
		}
		t.zones = append(t.zones, zs)
	}
	if last := t.zones[len(t.zones)-1]; last.Door != nil {
		return nil, fmt.Errorf("zone %q: final zone has a door: %w", last.Name, ErrBadContent)
	}
	return t, nil
}

func buildItem(ri rawItem) (*entity.Item, error) {
	if ri.Name == "" {
		return nil, fmt.Errorf("item with empty name: %w", ErrBadContent)
	}
	kind, ok := entity.ParseItemKind(ri.Kind)
	if !ok {
		return nil, fmt.Errorf("item %q: unknown kind %q: %w", ri.Name, ri.Kind, ErrBadContent)
	}
	it := &entity.Item{Name: ri.Name, Description: ri.Description, Kind: kind}
	switch kind {
	case entity.KindWeapon:
		if ri.Damage <= 0 {
			return nil, fmt.Errorf("weapon %q: damage must be positive: %w", ri.Name, ErrBadContent)
		}
		it.Damage = ri.Damage
	case entity.KindConsumable:
		eff, ok := entity.ParseEffect(ri.Effect)
		if !ok || eff == entity.EffectNone {
			return nil, fmt.Errorf("consumable %q: unknown effect %q: %w", ri.Name, ri.Effect, ErrBadContent)
		}
		it.Effect = eff
	}
	return it, nil
}

func (t *Table) item(name string) (*entity.Item, error) {
	it, ok := t.LookupItem(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownItem)
	}
	return it, nil
}

func (t *Table) buildRecipe(rr rawRecipe) (Recipe, error) {
	res, err := t.item(rr.Result)
	if err != nil {
		return Recipe{}, err
	}
	if len(rr.Ingredients) == 0 {
		return Recipe{}, fmt.Errorf("%s has no ingredients: %w", res.Name, ErrBadContent)
	}
	r := Recipe{Result: res}
	for _, ing := range rr.Ingredients {
		it, err := t.item(ing.Item)
		if err != nil {
			return Recipe{}, err
		}
		if ing.Count <= 0 {
			return Recipe{}, fmt.Errorf("%s needs %d %s: %w", res.Name, ing.Count, it.Name, ErrBadContent)
		}
		r.Ingredients = append(r.Ingredients, Ingredient{Item: it, Count: ing.Count})
	}
	return r, nil
}

func (t *Table) buildGrant(rg rawGrant) (*Grant, error) {
	it, err := t.item(rg.Item)
	if err != nil {
		return nil, err
	}
	return &Grant{Item: it, Message: rg.Message}, nil
}

func (t *Table) buildZone(rz rawZone) (*ZoneSpec, error) {
	if rz.Name == "" {
		return nil, fmt.Errorf("zone with empty name: %w", ErrBadContent)
	}
	zs := &ZoneSpec{
		Name:         rz.Name,
		DrainsSanity: rz.DrainsSanity,
		Spawn:        zone.Point{X: rz.Spawn.X, Y: rz.Spawn.Y},
		Layout:       rz.Layout,
		Story:        rz.Story,
	}
	for _, rc := range rz.Creatures {
		a, ok := entity.ParseArchetype(rc.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown creature %q: %w", rc.Kind, ErrBadContent)
		}
		zs.Creatures = append(zs.Creatures, CreatureSpec{Archetype: a, X: rc.X, Y: rc.Y})
	}
	for _, ri := range rz.Interactables {
		zs.Interactables = append(zs.Interactables, InteractableSpec{
			Interactable: zone.Interactable{Kind: zone.ParseInteractKind(ri.Kind), Text: ri.Text},
			X:            ri.X,
			Y:            ri.Y,
		})
	}
	if rz.StoryGrant != nil {
		g, err := t.buildGrant(*rz.StoryGrant)
		if err != nil {
			return nil, fmt.Errorf("story grant: %w", err)
		}
		zs.StoryGrant = g
	}
	if rz.Door != nil {
		key, err := t.item(rz.Door.Key)
		if err != nil {
			return nil, fmt.Errorf("door key: %w", err)
		}
		zs.Door = &Door{Key: key, Success: rz.Door.Success, Failure: rz.Door.Failure}
	}
	if rz.Endgame != nil {
		zs.Endgame = &Endgame{Success: rz.Endgame.Success, Failure: rz.Endgame.Failure}
	}
	for _, is := range zs.Interactables {
		switch {
		case is.Kind == zone.InteractDoor && zs.Door == nil:
			return nil, fmt.Errorf("door at (%d,%d) without door settings: %w", is.X, is.Y, ErrBadContent)
		case is.Kind == zone.InteractEndgame && zs.Endgame == nil:
			return nil, fmt.Errorf("endgame at (%d,%d) without endgame texts: %w", is.X, is.Y, ErrBadContent)
		}
	}
	return zs, nil
}
