// Package format houses the geoh5 on-disk naming conventions: group
// path layout, attribute name mangling, and the small set of value
// codecs (bool, datetime) the HDF5 type system does not express
// natively. It has no dependency on internal/container and never opens
// a file itself — it only tells that package what strings and bytes to
// use.
package format

// Root group path layout (spec §6.1). Every geoh5 file is a single
// HDF5 root group named RootGroupName, containing exactly these five
// children.
const (
	RootGroupName = "GEOSCIENCE"

	RootAttrName = "Root"

	GroupsGroupName       = "Groups"
	ObjectsGroupName      = "Objects"
	DataGroupName         = "Data"
	TypesGroupName        = "Types"
	GroupTypesGroupName   = "Group types"
	ObjectTypesGroupName  = "Object types"
	DataTypesGroupName    = "Data types"
	PropertyGroupTypeName = "Property groups"

	// DrillholeGroupTypeName is the GroupType name a DrillholeGroup-kind
	// Group is registered under, the signal internal/persist/reader uses
	// to recognize a concatenating group on load.
	DrillholeGroupTypeName = "Drillhole group"
)

// Per-entity dataset/attribute names (spec §6.1). Most entity metadata
// lives in HDF5 attributes on the entity's own group; values live in
// child datasets under these fixed names.
const (
	AttrUID         = "ID"
	AttrName        = "Name"
	AttrTypeUID     = "Type ID"
	AttrPublic      = "Public"
	AttrVisible     = "Visible"
	AttrAllowDelete = "Allow delete"
	AttrAllowRename = "Allow rename"
	AttrAllowMove   = "Allow move"

	DatasetVertices = "Vertices"
	DatasetCells    = "Cells"
	DatasetValues   = "Data"
	DatasetValueMap = "Value map"

	GroupPropertyGroups = "PropertyGroups"

	AttrPropertyGroupType = "Property group type"
	DatasetProperties     = "Properties"
)

// EntityType attribute names (spec §6.1, entity-type group layout).
const (
	AttrTypeName        = "Name"
	AttrTypeDescription = "Description"
	AttrTypeUnits       = "Units"
	AttrPrimitiveType   = "Primitive type"
	AttrHidden          = "Hidden"
	AttrNumberOfBins    = "Number of bins"
	AttrTransparent     = "Hidden" // transparency-related types reuse the Hidden slot in geoh5
	AttrColorMap        = "Color map"
	AttrMappingType     = "Mapping type"
	AttrAssociation     = "Association"
)

// Project (root Workspace) attributes (spec §6.2).
const (
	AttrContributors   = "Contributors"
	AttrDistanceUnit   = "Distance unit"
	AttrGAVersion      = "GA Version"
	AttrVersion        = "Version"
	AttrProjectOrigin  = "Origin"
	AttrDefaultProject = "Project"
)

// CurrentFormatVersion is written to every newly created file's root
// group "Version" attribute.
const CurrentFormatVersion = "2.0"

// Concatenation layer names (spec §4.7/§6.1): a DrillholeGroup-kind
// group's shared arrays and object index live under a single child
// group rather than one record per contained object.
const (
	ConcatGroupName     = "Concatenated Data"
	DatasetObjectIDs    = "Object IDs"
	ChannelStartSuffix  = " start"
	ChannelLengthSuffix = " length"
)
