package discovery

// Option is an abbreviated key of the discovery payload.
type Option string

// Options for origin
const (
	Name       Option = "name"
	SWVersion  Option = "sw"
	SupportURL Option = "url"
)

// Options for device
const (
	ConfigurationURL Option = "cu"
	Connections      Option = "cns"
	Identifiers      Option = "ids"
	Manufacturer     Option = "mf"
	Model            Option = "mdl"
	ModelID          Option = "mdl_id"
	HWVersion        Option = "hw"
	SuggestedArea    Option = "sa"
	SerialNumber     Option = "sn"
)

// Options for components
const (
	Availability              Option = "avty"
	AvailabilityMode          Option = "avty_mode"
	AvailabilityTopic         Option = "avty_t"
	DeviceClass               Option = "dev_cla"
	EnabledByDefault          Option = "en"
	EntityCategory            Option = "ent_cat"
	Icon                      Option = "ic"
	JSONAttributesTopic       Option = "json_attr_t"
	ObjectID                  Option = "obj_id"
	Options                   Option = "ops"
	Platform                  Option = "p"
	PayloadAvailable          Option = "pl_avail"
	PayloadNotAvailable       Option = "pl_not_avail"
	StateClass                Option = "stat_cla"
	StateTopic                Option = "stat_t"
	SuggestedDisplayPrecision Option = "sug_dsp_prc"
	Topic                     Option = "t"
	UniqueID                  Option = "uniq_id"
	UnitOfMeasurement         Option = "unit_of_meas"
	ValueTemplate             Option = "val_tpl"
)
